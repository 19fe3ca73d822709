package healthie_dto

type FormAnswerGroup struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	FinishedAt  string       `json:"finished_at,omitempty"`
	User        *Patient     `json:"user,omitempty"`
	FormAnswers []FormAnswer `json:"form_answers,omitempty"`
}

type FormAnswer struct {
	Label        string        `json:"label,omitempty"`
	Answer       string        `json:"answer,omitempty"`
	CustomModule *CustomModule `json:"custom_module,omitempty"`
}

type CustomModule struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label,omitempty"`
	ModType string `json:"mod_type,omitempty"`
}

// FieldError is one entry of the messages array a mutation returns when it
// rejects input.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

package requests

import "intake-service/internal/pkg/formflow"

// SaveProgress stores a patient's in-progress answer state.
type SaveProgress struct {
	PatientID string                `json:"patient_id" validate:"required"`
	State     *formflow.AnswerState `json:"state" validate:"required"`
}

// ValidateStep checks one wizard step against the supplied state without
// persisting anything.
type ValidateStep struct {
	FormID   string                `json:"form_id" validate:"required"`
	Step     int                   `json:"step" validate:"required,min=1,max=6"`
	State    *formflow.AnswerState `json:"state" validate:"required"`
	TestMode bool                  `json:"test_mode"`
}

// SubmitIntake finalizes the form: validates every step, submits to the
// clinical-records API and writes the secondary record.
type SubmitIntake struct {
	FormID    string                `json:"form_id" validate:"required"`
	PatientID string                `json:"patient_id" validate:"required"`
	State     *formflow.AnswerState `json:"state" validate:"required"`
	TestMode  bool                  `json:"test_mode"`
}

// SearchPatients looks up patients in the clinical-records API by free-text
// keywords, optionally narrowed by date of birth.
type SearchPatients struct {
	Keywords    string `json:"keywords" validate:"required,min=2"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

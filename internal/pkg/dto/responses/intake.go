package responses

import (
	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/healthie_dto"
)

// IntakeForm is the served form: the upstream schema partitioned into steps
// with the step count the wizard should render.
type IntakeForm struct {
	Form       *formflow.Form `json:"form"`
	TotalSteps int            `json:"total_steps"`
}

// StepLayout wraps the resolved placement plan for one step.
type StepLayout struct {
	Layout *formflow.StepLayout `json:"layout"`
}

// StepValidation reports the outcome of validating one step.
type StepValidation struct {
	IsValid bool     `json:"is_valid"`
	Missing []string `json:"missing"`
}

// SubmitIntake confirms a completed submission.
type SubmitIntake struct {
	SubmissionID      string `json:"submission_id"`
	FormAnswerGroupID string `json:"form_answer_group_id,omitempty"`
	Status            string `json:"status"`
}

// Progress returns a saved snapshot, if any.
type Progress struct {
	Found   bool                  `json:"found"`
	SavedAt string                `json:"saved_at,omitempty"`
	State   *formflow.AnswerState `json:"state,omitempty"`
}

// PatientSearch lists clinical-records patients matching a query.
type PatientSearch struct {
	Patients []healthie_dto.Patient `json:"patients"`
}

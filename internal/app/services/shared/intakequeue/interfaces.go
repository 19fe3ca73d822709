package intakequeue

import "context"

// SubmittedEvent is published once an intake reaches the completed state so
// downstream consumers (notifications, analytics) can react.
type SubmittedEvent struct {
	SubmissionID      string `json:"submission_id"`
	PatientHealthieID string `json:"patient_healthie_id"`
	FormID            string `json:"form_id"`
	FormAnswerGroupID string `json:"form_answer_group_id,omitempty"`
	SubmittedAt       string `json:"submitted_at"`
}

type IntakeQueueService interface {
	PublishSubmitted(ctx context.Context, event *SubmittedEvent) error
}

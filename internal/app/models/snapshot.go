package models

import (
	"time"

	"intake-service/internal/pkg/formflow"
)

// ProgressSnapshot is the saved in-progress state of one patient's intake,
// kept in the session store so a closed browser can resume where it left
// off.
type ProgressSnapshot struct {
	PatientID string                `json:"patient_id"`
	SavedAt   time.Time             `json:"saved_at"`
	State     *formflow.AnswerState `json:"state"`
}

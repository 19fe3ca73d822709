package healthie

import (
	"context"

	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/healthie_dto"
)

// CreateFormAnswerGroupInput is the payload for submitting a completed
// form.
type CreateFormAnswerGroupInput struct {
	UserID             string
	CustomModuleFormID string
	Finished           bool
	FormAnswers        []formflow.FormAnswer
}

type HealthieClient interface {
	GetPatient(ctx context.Context, patientID string) (*healthie_dto.Patient, error)
	SearchPatients(ctx context.Context, keywords, dateOfBirth string) ([]healthie_dto.Patient, error)
	GetForm(ctx context.Context, formID string) (*formflow.Form, error)
	CreateFormAnswerGroup(ctx context.Context, input *CreateFormAnswerGroupInput) (string, error)
	ListFormAnswerGroups(ctx context.Context, patientID string) ([]healthie_dto.FormAnswerGroup, error)
	GetFormAnswerGroup(ctx context.Context, groupID string) (*healthie_dto.FormAnswerGroup, error)
	DeleteFormAnswerGroup(ctx context.Context, groupID string) error
}

package intakes

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/healthie_dto"
)

type IntakeUsecase interface {
	GetForm(ctx context.Context, formID string) (*responses.IntakeForm, error)
	GetStepLayout(ctx context.Context, formID string, step int, state *formflow.AnswerState) (*responses.StepLayout, error)
	ValidateStep(ctx context.Context, request *requests.ValidateStep) (*responses.StepValidation, error)
	Submit(ctx context.Context, request *requests.SubmitIntake) (*responses.SubmitIntake, error)
	GetPatient(ctx context.Context, patientID string) (*healthie_dto.Patient, error)
	SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.PatientSearch, error)
}

type IntakeRepository interface {
	InsertIntake(ctx context.Context, intake *models.IntakeSubmission) (string, error)
	FindIntakeByID(ctx context.Context, intakeID string) (*models.IntakeSubmission, error)
	FindIntakes(ctx context.Context, status string, page, pageSize int) ([]models.IntakeSubmission, error)
	FindIntakesByEmail(ctx context.Context, email string) ([]models.IntakeSubmission, error)
	DeleteIntakeByID(ctx context.Context, intakeID string) error
}

package admins

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/healthie_dto"
)

// AdminUsecase backs the review dashboard: browsing the secondary intake
// records and managing the upstream form answer groups.
type AdminUsecase interface {
	IssueToken(ctx context.Context) (*responses.AdminToken, error)
	ListIntakes(ctx context.Context, status string, page, pageSize int) ([]models.IntakeSubmission, error)
	FindIntakesByEmail(ctx context.Context, email string) ([]models.IntakeSubmission, error)
	GetIntake(ctx context.Context, intakeID string) (*models.IntakeSubmission, error)
	DeleteIntake(ctx context.Context, intakeID string) error
	ListPatientForms(ctx context.Context, patientID string) ([]healthie_dto.FormAnswerGroup, error)
	GetFormDetails(ctx context.Context, groupID string) (*healthie_dto.FormAnswerGroup, error)
	DeleteRemoteForm(ctx context.Context, groupID string) error
}

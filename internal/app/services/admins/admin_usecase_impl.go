package admins

import (
	"context"
	"fmt"

	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/healthie"
	"intake-service/internal/app/services/intakes"
	"intake-service/internal/app/services/shared/jwtmanager"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/healthie_dto"
)

const adminTokenSubject = "admin-dashboard"

type adminUsecase struct {
	IntakeRepository intakes.IntakeRepository
	HealthieClient   healthie.HealthieClient
	JWTManager       *jwtmanager.JWTManager
	InternalConfig   *config.InternalConfig
}

func NewAdminUsecase(
	intakeRepository intakes.IntakeRepository,
	healthieClient healthie.HealthieClient,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
) AdminUsecase {
	return &adminUsecase{
		IntakeRepository: intakeRepository,
		HealthieClient:   healthieClient,
		JWTManager:       jwtManager,
		InternalConfig:   internalConfig,
	}
}

func (uc *adminUsecase) IssueToken(ctx context.Context) (*responses.AdminToken, error) {
	token, err := uc.JWTManager.CreateToken(adminTokenSubject)
	if err != nil {
		return nil, err
	}
	return &responses.AdminToken{
		Token:     token,
		ExpiresIn: uc.InternalConfig.JWT.ExpTimeInHour * 3600,
	}, nil
}

func (uc *adminUsecase) ListIntakes(ctx context.Context, status string, page, pageSize int) ([]models.IntakeSubmission, error) {
	return uc.IntakeRepository.FindIntakes(ctx, status, page, pageSize)
}

func (uc *adminUsecase) FindIntakesByEmail(ctx context.Context, email string) ([]models.IntakeSubmission, error) {
	return uc.IntakeRepository.FindIntakesByEmail(ctx, email)
}

func (uc *adminUsecase) GetIntake(ctx context.Context, intakeID string) (*models.IntakeSubmission, error) {
	intake, err := uc.IntakeRepository.FindIntakeByID(ctx, intakeID)
	if err != nil {
		return nil, err
	}
	if intake == nil {
		return nil, exceptions.ErrIntakeNotFound(fmt.Errorf("intake %s not found", intakeID))
	}
	return intake, nil
}

func (uc *adminUsecase) DeleteIntake(ctx context.Context, intakeID string) error {
	return uc.IntakeRepository.DeleteIntakeByID(ctx, intakeID)
}

func (uc *adminUsecase) ListPatientForms(ctx context.Context, patientID string) ([]healthie_dto.FormAnswerGroup, error) {
	return uc.HealthieClient.ListFormAnswerGroups(ctx, patientID)
}

func (uc *adminUsecase) GetFormDetails(ctx context.Context, groupID string) (*healthie_dto.FormAnswerGroup, error) {
	return uc.HealthieClient.GetFormAnswerGroup(ctx, groupID)
}

func (uc *adminUsecase) DeleteRemoteForm(ctx context.Context, groupID string) error {
	return uc.HealthieClient.DeleteFormAnswerGroup(ctx, groupID)
}

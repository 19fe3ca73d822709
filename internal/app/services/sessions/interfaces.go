package sessions

import (
	"context"

	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	SaveProgress(ctx context.Context, request *requests.SaveProgress) error
	GetProgress(ctx context.Context, patientID string) (*responses.Progress, error)
	ClearProgress(ctx context.Context, patientID string) error
}

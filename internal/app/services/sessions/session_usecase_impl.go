package sessions

import (
	"context"
	"fmt"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/shared/redis"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionUsecase struct {
	RedisRepository redis.RedisRepository
	ProgressTTL     time.Duration
	Log             *zap.Logger
}

func NewSessionUsecase(redisRepository redis.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) SessionUsecase {
	return &sessionUsecase{
		RedisRepository: redisRepository,
		ProgressTTL:     time.Duration(internalConfig.App.ProgressTTLInHours) * time.Hour,
		Log:             logger,
	}
}

func (uc *sessionUsecase) SaveProgress(ctx context.Context, request *requests.SaveProgress) error {
	snapshot := &models.ProgressSnapshot{
		PatientID: request.PatientID,
		SavedAt:   time.Now().UTC(),
		State:     request.State,
	}
	key := fmt.Sprintf(constvars.RedisKeyIntakeProgress, request.PatientID)
	return uc.RedisRepository.Set(ctx, key, snapshot, uc.ProgressTTL)
}

// GetProgress loads the saved snapshot for a patient. Loading is
// best-effort: an unreachable store or a payload that no longer parses is
// treated as no snapshot so the wizard starts fresh instead of failing.
func (uc *sessionUsecase) GetProgress(ctx context.Context, patientID string) (*responses.Progress, error) {
	key := fmt.Sprintf(constvars.RedisKeyIntakeProgress, patientID)
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("sessionUsecase.GetProgress failed to read snapshot",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return &responses.Progress{Found: false}, nil
	}
	if data == "" {
		return &responses.Progress{Found: false}, nil
	}

	var snapshot models.ProgressSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		uc.Log.Warn("sessionUsecase.GetProgress discarding malformed snapshot",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return &responses.Progress{Found: false}, nil
	}

	return &responses.Progress{
		Found:   true,
		SavedAt: snapshot.SavedAt.Format(time.RFC3339),
		State:   snapshot.State,
	}, nil
}

func (uc *sessionUsecase) ClearProgress(ctx context.Context, patientID string) error {
	key := fmt.Sprintf(constvars.RedisKeyIntakeProgress, patientID)
	return uc.RedisRepository.Delete(ctx, key)
}

package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/formflow"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestSessionUsecase(ttlHours int) (SessionUsecase, *MockRedisRepository) {
	mockRedis := new(MockRedisRepository)
	uc := &sessionUsecase{
		RedisRepository: mockRedis,
		ProgressTTL:     time.Duration(ttlHours) * time.Hour,
		Log:             zap.NewNop(),
	}
	return uc, mockRedis
}

func TestSessionUsecase_SaveProgress(t *testing.T) {
	uc, mockRedis := newTestSessionUsecase(72)

	state := formflow.NewAnswerState("patient-1")
	state.CurrentStep = 3

	mockRedis.On("Set", mock.Anything, "intake:progress:patient-1", mock.MatchedBy(func(value interface{}) bool {
		snapshot, ok := value.(*models.ProgressSnapshot)
		return ok && snapshot.PatientID == "patient-1" && snapshot.State.CurrentStep == 3
	}), 72*time.Hour).Return(nil)

	err := uc.SaveProgress(context.Background(), &requests.SaveProgress{
		PatientID: "patient-1",
		State:     state,
	})

	assert.NoError(t, err)
	mockRedis.AssertExpectations(t)
}

func TestSessionUsecase_GetProgress(t *testing.T) {
	t.Run("Snapshot Found", func(t *testing.T) {
		uc, mockRedis := newTestSessionUsecase(72)

		state := formflow.NewAnswerState("patient-1")
		state.CurrentStep = 4
		savedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
		raw, err := json.Marshal(&models.ProgressSnapshot{
			PatientID: "patient-1",
			SavedAt:   savedAt,
			State:     state,
		})
		assert.NoError(t, err)

		mockRedis.On("Get", mock.Anything, "intake:progress:patient-1").Return(string(raw), nil)

		response, err := uc.GetProgress(context.Background(), "patient-1")

		assert.NoError(t, err)
		assert.True(t, response.Found)
		assert.Equal(t, savedAt.Format(time.RFC3339), response.SavedAt)
		assert.Equal(t, 4, response.State.CurrentStep)
	})

	t.Run("No Snapshot", func(t *testing.T) {
		uc, mockRedis := newTestSessionUsecase(72)

		mockRedis.On("Get", mock.Anything, "intake:progress:patient-2").Return("", nil)

		response, err := uc.GetProgress(context.Background(), "patient-2")

		assert.NoError(t, err)
		assert.False(t, response.Found)
		assert.Nil(t, response.State)
	})

	t.Run("Corrupt Snapshot", func(t *testing.T) {
		uc, mockRedis := newTestSessionUsecase(72)

		mockRedis.On("Get", mock.Anything, "intake:progress:patient-3").Return("not-json", nil)

		response, err := uc.GetProgress(context.Background(), "patient-3")

		assert.NoError(t, err)
		assert.False(t, response.Found)
		assert.Nil(t, response.State)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		uc, mockRedis := newTestSessionUsecase(72)

		mockRedis.On("Get", mock.Anything, "intake:progress:patient-4").Return("", fmt.Errorf("connection refused"))

		response, err := uc.GetProgress(context.Background(), "patient-4")

		assert.NoError(t, err)
		assert.False(t, response.Found)
		assert.Nil(t, response.State)
	})
}

// Saving then loading a snapshot must hand back the same answer state,
// including checkbox selection order and dates that are only partly filled.
func TestSessionUsecase_SaveThenGetProgress(t *testing.T) {
	uc, mockRedis := newTestSessionUsecase(72)

	state := formflow.NewAnswerState("patient-9")
	state.CurrentStep = 5
	state.Answers["q-phone"] = "(555)123-4567"
	state.Dates["q-dob"] = &formflow.DateParts{Month: "3", Day: "14", Year: "1990"}
	state.Dates["q-injury"] = &formflow.DateParts{Month: "7"}
	state.Selections["q-symptoms"] = formflow.NewSelection("Numbness", "Aching", "Burning")
	state.HeightFeet = "5"
	state.HeightInches = "11"
	state.Custom.EmergencyContactName = "Jordan Reyes"
	state.Custom.EmergencyContactPhone = "(555)987-6543"

	var stored string
	mockRedis.On("Set", mock.Anything, "intake:progress:patient-9", mock.Anything, 72*time.Hour).
		Run(func(args mock.Arguments) {
			raw, err := json.Marshal(args.Get(2))
			assert.NoError(t, err)
			stored = string(raw)
		}).Return(nil)

	err := uc.SaveProgress(context.Background(), &requests.SaveProgress{
		PatientID: "patient-9",
		State:     state,
	})
	assert.NoError(t, err)

	mockRedis.On("Get", mock.Anything, "intake:progress:patient-9").Return(stored, nil)

	response, err := uc.GetProgress(context.Background(), "patient-9")

	assert.NoError(t, err)
	assert.True(t, response.Found)
	assert.Equal(t, 5, response.State.CurrentStep)
	assert.Equal(t, state.Answers, response.State.Answers)
	assert.Equal(t, []string{"Numbness", "Aching", "Burning"}, response.State.Selections["q-symptoms"].Values())
	assert.Equal(t, state.Dates["q-dob"], response.State.Dates["q-dob"])
	assert.Equal(t, &formflow.DateParts{Month: "7"}, response.State.Dates["q-injury"])
	assert.Equal(t, state.HeightFeet, response.State.HeightFeet)
	assert.Equal(t, state.HeightInches, response.State.HeightInches)
	assert.Equal(t, state.Custom, response.State.Custom)
	mockRedis.AssertExpectations(t)
}

func TestSessionUsecase_ClearProgress(t *testing.T) {
	uc, mockRedis := newTestSessionUsecase(72)

	mockRedis.On("Delete", mock.Anything, "intake:progress:patient-1").Return(nil)

	assert.NoError(t, uc.ClearProgress(context.Background(), "patient-1"))
	mockRedis.AssertExpectations(t)
}

package sessions

import (
	"net/http"
	"sync"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase SessionUsecase
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, sessionUsecase SessionUsecase) *SessionController {
	onceSessionController.Do(func() {
		sessionControllerInstance = &SessionController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
		}
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) SaveProgress(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.SaveProgress)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SessionController.SaveProgress failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.SessionUsecase.SaveProgress(r.Context(), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveProgressSuccessMessage, nil)
}

func (ctrl *SessionController) GetProgress(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	response, err := ctrl.SessionUsecase.GetProgress(r.Context(), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProgressSuccessMessage, response)
}

func (ctrl *SessionController) ClearProgress(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	if err := ctrl.SessionUsecase.ClearProgress(r.Context(), patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearProgressSuccessMessage, nil)
}

package intakes

import (
	"net/http"
	"strconv"
	"sync"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeController struct {
	Log           *zap.Logger
	IntakeUsecase IntakeUsecase
}

var (
	intakeControllerInstance *IntakeController
	onceIntakeController     sync.Once
)

func NewIntakeController(logger *zap.Logger, intakeUsecase IntakeUsecase) *IntakeController {
	onceIntakeController.Do(func() {
		intakeControllerInstance = &IntakeController{
			Log:           logger,
			IntakeUsecase: intakeUsecase,
		}
	})
	return intakeControllerInstance
}

func (ctrl *IntakeController) GetForm(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	formID := chi.URLParam(r, constvars.URLParamFormID)

	ctrl.Log.Debug("IntakeController.GetForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, formID),
	)

	response, err := ctrl.IntakeUsecase.GetForm(r.Context(), formID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormSuccessMessage, response)
}

func (ctrl *IntakeController) GetStepLayout(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	formID := chi.URLParam(r, constvars.URLParamFormID)

	step, err := strconv.Atoi(chi.URLParam(r, constvars.URLQueryParamStep))
	if err != nil || step < 1 || step > formflow.TotalSteps {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	state := new(formflow.AnswerState)
	if err := json.NewDecoder(r.Body).Decode(state); err != nil {
		ctrl.Log.Error("IntakeController.GetStepLayout failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.IntakeUsecase.GetStepLayout(r.Context(), formID, step, state)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormSuccessMessage, response)
}

func (ctrl *IntakeController) ValidateStep(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.ValidateStep)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IntakeController.ValidateStep failed to parse request body",
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

	response, err := ctrl.IntakeUsecase.ValidateStep(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateStepSuccessMessage, response)
}

func (ctrl *IntakeController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.SubmitIntake)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IntakeController.Submit failed to parse request body",
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

	ctrl.Log.Info("IntakeController.Submit started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	response, err := ctrl.IntakeUsecase.Submit(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeController.Submit finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, response.SubmissionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitIntakeSuccessMessage, response)
}

func (ctrl *IntakeController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	response, err := ctrl.IntakeUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *IntakeController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchPatients{
		Keywords:    r.URL.Query().Get(constvars.URLQueryParamKeywords),
		DateOfBirth: r.URL.Query().Get(constvars.URLQueryParamDateOfBirth),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.IntakeUsecase.SearchPatients(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchPatientsSuccessMessage, response)
}

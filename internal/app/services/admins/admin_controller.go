package admins

import (
	"net/http"
	"strconv"
	"sync"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase AdminUsecase
}

var (
	adminControllerInstance *AdminController
	onceAdminController     sync.Once
)

func NewAdminController(logger *zap.Logger, adminUsecase AdminUsecase) *AdminController {
	onceAdminController.Do(func() {
		adminControllerInstance = &AdminController{
			Log:          logger,
			AdminUsecase: adminUsecase,
		}
	})
	return adminControllerInstance
}

func (ctrl *AdminController) IssueToken(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.AdminUsecase.IssueToken(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.IssueAdminTokenSuccess, response)
}

func (ctrl *AdminController) ListIntakes(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get(constvars.URLQueryParamEmail); email != "" {
		response, err := ctrl.AdminUsecase.FindIntakesByEmail(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListIntakesSuccessMessage, response)
		return
	}

	status := r.URL.Query().Get(constvars.URLQueryParamStatus)
	page, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))

	response, err := ctrl.AdminUsecase.ListIntakes(r.Context(), status, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListIntakesSuccessMessage, response)
}

func (ctrl *AdminController) GetIntake(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, constvars.URLParamSubmissionID)

	response, err := ctrl.AdminUsecase.GetIntake(r.Context(), intakeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIntakeSuccessMessage, response)
}

func (ctrl *AdminController) DeleteIntake(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, constvars.URLParamSubmissionID)

	if err := ctrl.AdminUsecase.DeleteIntake(r.Context(), intakeID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteIntakeSuccessMessage, nil)
}

func (ctrl *AdminController) ListPatientForms(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	response, err := ctrl.AdminUsecase.ListPatientForms(r.Context(), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListPatientFormsSuccess, response)
}

func (ctrl *AdminController) GetFormDetails(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, constvars.URLParamGroupID)

	response, err := ctrl.AdminUsecase.GetFormDetails(r.Context(), groupID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormDetailsSuccessMessage, response)
}

func (ctrl *AdminController) DeleteRemoteForm(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, constvars.URLParamGroupID)

	if err := ctrl.AdminUsecase.DeleteRemoteForm(r.Context(), groupID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteRemoteFormSuccess, nil)
}

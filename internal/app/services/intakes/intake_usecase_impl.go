package intakes

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/healthie"
	"intake-service/internal/app/services/sessions"
	"intake-service/internal/app/services/shared/intakequeue"
	"intake-service/internal/app/services/shared/storage"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/healthie_dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type intakeUsecase struct {
	HealthieClient   healthie.HealthieClient
	IntakeRepository IntakeRepository
	Storage          storage.Storage
	Queue            intakequeue.IntakeQueueService
	SessionUsecase   sessions.SessionUsecase
	InternalConfig   *config.InternalConfig
	DriverConfig     *config.DriverConfig
	Log              *zap.Logger
}

func NewIntakeUsecase(
	healthieClient healthie.HealthieClient,
	intakeRepository IntakeRepository,
	minioStorage storage.Storage,
	queueService intakequeue.IntakeQueueService,
	sessionUsecase sessions.SessionUsecase,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) IntakeUsecase {
	return &intakeUsecase{
		HealthieClient:   healthieClient,
		IntakeRepository: intakeRepository,
		Storage:          minioStorage,
		Queue:            queueService,
		SessionUsecase:   sessionUsecase,
		InternalConfig:   internalConfig,
		DriverConfig:     driverConfig,
		Log:              logger,
	}
}

func (uc *intakeUsecase) GetForm(ctx context.Context, formID string) (*responses.IntakeForm, error) {
	if formID == "" {
		formID = uc.InternalConfig.Healthie.FormID
	}
	form, err := uc.HealthieClient.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	return &responses.IntakeForm{
		Form:       form,
		TotalSteps: formflow.TotalSteps,
	}, nil
}

func (uc *intakeUsecase) GetStepLayout(ctx context.Context, formID string, step int, state *formflow.AnswerState) (*responses.StepLayout, error) {
	form, err := uc.HealthieClient.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	return &responses.StepLayout{
		Layout: formflow.PlaceStep(form, step, state),
	}, nil
}

func (uc *intakeUsecase) ValidateStep(ctx context.Context, request *requests.ValidateStep) (*responses.StepValidation, error) {
	form, err := uc.HealthieClient.GetForm(ctx, request.FormID)
	if err != nil {
		return nil, err
	}

	result := formflow.ValidateStep(form, request.Step, request.State, formflow.ValidateOptions{
		TestMode: request.TestMode || uc.InternalConfig.App.TestMode,
	})
	return &responses.StepValidation{
		IsValid: result.IsValid,
		Missing: result.Missing,
	}, nil
}

// Submit runs the full completion pipeline: re-validate every step, push the
// answers to the clinical-records API, then best-effort persist the
// secondary record, store the signature image, publish the submitted event
// and clear the saved progress. Only clinical-records failures abort; the
// caller keeps its state and can retry.
func (uc *intakeUsecase) Submit(ctx context.Context, request *requests.SubmitIntake) (*responses.SubmitIntake, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	formID := request.FormID
	if formID == "" {
		formID = uc.InternalConfig.Healthie.FormID
	}
	form, err := uc.HealthieClient.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	testMode := request.TestMode || uc.InternalConfig.App.TestMode
	var missing []string
	for step := 1; step <= formflow.TotalSteps; step++ {
		result := formflow.ValidateStep(form, step, request.State, formflow.ValidateOptions{TestMode: testMode})
		missing = append(missing, result.Missing...)
	}
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	answers := formflow.BuildFormAnswers(form, request.State)
	groupID, err := uc.HealthieClient.CreateFormAnswerGroup(ctx, &healthie.CreateFormAnswerGroupInput{
		UserID:             request.PatientID,
		CustomModuleFormID: formID,
		Finished:           true,
		FormAnswers:        answers,
	})
	if err != nil {
		return nil, err
	}

	signatureObject := uc.storeSignatureImage(ctx, form, request.State, request.PatientID)

	submissionID := uuid.NewString()
	doc := formflow.BuildDocumentData(form, request.State)
	now := time.Now().UTC()
	intake := &models.IntakeSubmission{
		ID:                submissionID,
		PatientHealthieID: request.PatientID,
		FormID:            formID,
		FirstName:         doc.FirstName,
		LastName:          doc.LastName,
		DateOfBirth:       doc.DOB,
		Email:             doc.Email,
		Phone:             doc.Phone,
		Status:            constvars.IntakeStatusCompleted,
		SchemaVersion:     constvars.IntakeSchemaVersion,
		FormAnswerGroupID: groupID,
		SignatureObject:   signatureObject,
		FormData:          doc.Answers,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if _, err := uc.IntakeRepository.InsertIntake(ctx, intake); err != nil {
		// The record of truth already exists upstream, keep going.
		uc.Log.Error("intakeUsecase.Submit failed to persist intake document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID),
			zap.Error(err),
		)
	}

	if err := uc.Queue.PublishSubmitted(ctx, &intakequeue.SubmittedEvent{
		SubmissionID:      submissionID,
		PatientHealthieID: request.PatientID,
		FormID:            formID,
		FormAnswerGroupID: groupID,
		SubmittedAt:       now.Format(time.RFC3339),
	}); err != nil {
		uc.Log.Error("intakeUsecase.Submit failed to publish submitted event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID),
			zap.Error(err),
		)
	}

	if err := uc.SessionUsecase.ClearProgress(ctx, request.PatientID); err != nil {
		uc.Log.Warn("intakeUsecase.Submit failed to clear saved progress",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
	}

	return &responses.SubmitIntake{
		SubmissionID:      submissionID,
		FormAnswerGroupID: groupID,
		Status:            constvars.IntakeStatusCompleted,
	}, nil
}

// storeSignatureImage uploads the drawn signature PNG, when present, and
// returns the stored object name. Failures only log: the submission has
// already succeeded upstream and the structured signature JSON still holds
// the image data.
func (uc *intakeUsecase) storeSignatureImage(ctx context.Context, form *formflow.Form, state *formflow.AnswerState, patientID string) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	signatureQuestion := form.FindQuestion(func(q formflow.Question) bool {
		return q.Type == formflow.ModSignature
	})
	if signatureQuestion == nil {
		return ""
	}
	sig, ok := formflow.ParseSignature(state.Answer(signatureQuestion.ID))
	if !ok || sig.ImageDataURL == "" {
		return ""
	}

	imageData, err := decodeSignatureDataURL(sig.ImageDataURL, uc.InternalConfig.App.SignatureMaxUploadSizeInMB)
	if err != nil {
		uc.Log.Warn("intakeUsecase.storeSignatureImage invalid image data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}

	objectName := fmt.Sprintf("signature_%s_%s.png", patientID, uuid.NewString())
	stored, err := uc.Storage.UploadBase64Image(ctx, imageData, uc.DriverConfig.Minio.BucketName, objectName, ".png")
	if err != nil {
		uc.Log.Error("intakeUsecase.storeSignatureImage upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	return stored
}

// decodeSignatureDataURL strips the data-URL prefix and decodes the PNG
// payload, enforcing the configured size cap.
func decodeSignatureDataURL(dataURL string, maxSizeInMB int64) ([]byte, error) {
	const prefix = "base64,"
	idx := strings.Index(dataURL, prefix)
	if !strings.HasPrefix(dataURL, "data:image/png") || idx < 0 {
		return nil, exceptions.ErrSignatureImageMalformed(fmt.Errorf("unexpected data URL prefix"))
	}

	imageData, err := base64.StdEncoding.DecodeString(dataURL[idx+len(prefix):])
	if err != nil {
		return nil, exceptions.ErrSignatureImageMalformed(err)
	}
	if int64(len(imageData)) > maxSizeInMB*1024*1024 {
		return nil, exceptions.ErrSignatureImageMalformed(fmt.Errorf("image exceeds %dMB", maxSizeInMB))
	}
	return imageData, nil
}

func (uc *intakeUsecase) GetPatient(ctx context.Context, patientID string) (*healthie_dto.Patient, error) {
	return uc.HealthieClient.GetPatient(ctx, patientID)
}

func (uc *intakeUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.PatientSearch, error) {
	patients, err := uc.HealthieClient.SearchPatients(ctx, request.Keywords, request.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &responses.PatientSearch{Patients: patients}, nil
}

package healthie

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/formflow"
	"intake-service/internal/pkg/healthie_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	healthieClientInstance HealthieClient
	onceHealthieClient     sync.Once
)

type healthieClient struct {
	BaseUrl    string
	APIKey     string
	Log        *zap.Logger
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewHealthieClient builds the GraphQL client. All calls share one
// rate limiter so the service stays inside Healthie's request quota.
func NewHealthieClient(cfg *config.InternalConfig, logger *zap.Logger) HealthieClient {
	onceHealthieClient.Do(func() {
		client := &healthieClient{
			BaseUrl: cfg.Healthie.BaseUrl,
			APIKey:  cfg.Healthie.APIKey,
			Log:     logger,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.Healthie.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(
				rate.Limit(cfg.Healthie.RateLimitPerSecond),
				cfg.Healthie.RateLimitBurst,
			),
		}
		healthieClientInstance = client
	})
	return healthieClientInstance
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query runs one GraphQL operation and unmarshals the data payload into
// out.
func (c *healthieClient) query(ctx context.Context, operation string, variables map[string]interface{}, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	requestJSON, err := json.Marshal(graphqlRequest{Query: operation, Variables: variables})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Basic "+c.APIKey)
	req.Header.Set(constvars.HeaderAuthorizationSource, constvars.HealthieAuthorizationSourceAPI)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("healthieClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("healthieClient non-200 response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", resp.StatusCode),
		)
		return exceptions.ErrHealthieQuery(fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return exceptions.ErrDecodeResponse(err)
	}
	if len(envelope.Errors) > 0 {
		graphqlErr := fmt.Errorf("%s", envelope.Errors[0].Message)
		c.Log.Error("healthieClient GraphQL error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(graphqlErr),
		)
		return exceptions.ErrHealthieQuery(graphqlErr)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return exceptions.ErrDecodeResponse(err)
		}
	}
	return nil
}

func (c *healthieClient) GetPatient(ctx context.Context, patientID string) (*healthie_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var payload struct {
		User *healthie_dto.Patient `json:"user"`
	}
	err := c.query(ctx, queryGetUser, map[string]interface{}{"id": patientID}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.User == nil || payload.User.ID == "" {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("user %s not found", patientID))
	}
	return payload.User, nil
}

func (c *healthieClient) SearchPatients(ctx context.Context, keywords, dateOfBirth string) ([]healthie_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var payload struct {
		Users []healthie_dto.Patient `json:"users"`
	}
	err := c.query(ctx, querySearchUsers, map[string]interface{}{"keywords": keywords}, &payload)
	if err != nil {
		return nil, err
	}
	if dateOfBirth == "" {
		return payload.Users, nil
	}

	// The users query has no DOB argument, narrow the result here.
	filtered := make([]healthie_dto.Patient, 0, len(payload.Users))
	for _, user := range payload.Users {
		if user.DOB == dateOfBirth {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (c *healthieClient) GetForm(ctx context.Context, formID string) (*formflow.Form, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.GetForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, formID),
	)

	var payload struct {
		CustomModuleForm *formflow.Form `json:"customModuleForm"`
	}
	err := c.query(ctx, queryGetCustomModuleForm, map[string]interface{}{"id": formID}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.CustomModuleForm == nil {
		return nil, exceptions.ErrHealthieQuery(fmt.Errorf("form %s not found", formID))
	}

	formflow.NormalizeScaleQuestions(payload.CustomModuleForm)
	return payload.CustomModuleForm, nil
}

func (c *healthieClient) CreateFormAnswerGroup(ctx context.Context, input *CreateFormAnswerGroupInput) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.CreateFormAnswerGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, input.UserID),
		zap.String(constvars.LoggingFormIDKey, input.CustomModuleFormID),
	)

	formAnswers := make([]map[string]interface{}, 0, len(input.FormAnswers))
	for _, answer := range input.FormAnswers {
		formAnswers = append(formAnswers, map[string]interface{}{
			"custom_module_id": answer.QuestionID,
			"answer":           answer.Answer,
			"user_id":          input.UserID,
		})
	}

	var payload struct {
		CreateFormAnswerGroup struct {
			FormAnswerGroup *healthie_dto.FormAnswerGroup `json:"form_answer_group"`
			Messages        []healthie_dto.FieldError     `json:"messages"`
		} `json:"createFormAnswerGroup"`
	}
	err := c.query(ctx, mutationCreateFormAnswerGroup, map[string]interface{}{
		"user_id":               input.UserID,
		"custom_module_form_id": input.CustomModuleFormID,
		"finished":              input.Finished,
		"form_answers":          formAnswers,
	}, &payload)
	if err != nil {
		return "", err
	}

	if len(payload.CreateFormAnswerGroup.Messages) > 0 {
		fieldErr := payload.CreateFormAnswerGroup.Messages[0]
		return "", exceptions.ErrHealthieSubmit(fmt.Errorf("%s: %s", fieldErr.Field, fieldErr.Message))
	}
	if payload.CreateFormAnswerGroup.FormAnswerGroup == nil {
		return "", exceptions.ErrHealthieSubmit(fmt.Errorf("mutation returned no form answer group"))
	}
	return payload.CreateFormAnswerGroup.FormAnswerGroup.ID, nil
}

func (c *healthieClient) ListFormAnswerGroups(ctx context.Context, patientID string) ([]healthie_dto.FormAnswerGroup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.ListFormAnswerGroups called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var payload struct {
		FormAnswerGroups []healthie_dto.FormAnswerGroup `json:"formAnswerGroups"`
	}
	err := c.query(ctx, queryListFormAnswerGroups, map[string]interface{}{"user_id": patientID}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.FormAnswerGroups, nil
}

func (c *healthieClient) GetFormAnswerGroup(ctx context.Context, groupID string) (*healthie_dto.FormAnswerGroup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.GetFormAnswerGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var payload struct {
		FormAnswerGroup *healthie_dto.FormAnswerGroup `json:"formAnswerGroup"`
	}
	err := c.query(ctx, queryGetFormAnswerGroup, map[string]interface{}{"id": groupID}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.FormAnswerGroup == nil {
		return nil, exceptions.ErrIntakeNotFound(fmt.Errorf("form answer group %s not found", groupID))
	}
	return payload.FormAnswerGroup, nil
}

func (c *healthieClient) DeleteFormAnswerGroup(ctx context.Context, groupID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthieClient.DeleteFormAnswerGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var payload struct {
		DeleteFormAnswerGroup struct {
			Messages []healthie_dto.FieldError `json:"messages"`
		} `json:"deleteFormAnswerGroup"`
	}
	err := c.query(ctx, mutationDeleteFormAnswerGroup, map[string]interface{}{"id": groupID}, &payload)
	if err != nil {
		return err
	}
	if len(payload.DeleteFormAnswerGroup.Messages) > 0 {
		fieldErr := payload.DeleteFormAnswerGroup.Messages[0]
		return exceptions.ErrHealthieQuery(fmt.Errorf("%s: %s", fieldErr.Field, fieldErr.Message))
	}
	return nil
}

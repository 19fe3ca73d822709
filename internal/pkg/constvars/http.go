package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"

	HeaderContentType         = "Content-Type"
	HeaderAuthorization       = "Authorization"
	HeaderAuthorizationSource = "AuthorizationSource"
	HeaderXRequestID          = "X-Request-Id"
	HeaderAPIKey              = "x-api-key"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusUnprocessableEntity = 422
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

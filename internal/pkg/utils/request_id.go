package utils

import (
	"intake-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateRequestID returns a service-prefixed correlation id for one
// request.
func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

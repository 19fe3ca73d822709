package responses

// AdminToken carries a freshly issued dashboard bearer token.
type AdminToken struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

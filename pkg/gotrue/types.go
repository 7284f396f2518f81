package gotrue

// Session is the service-issued anonymous session. Cached process-wide for the
// lifetime of the application.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
	Role        string `json:"role,omitempty" example:"staff"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	Username  string `json:"username" example:"warden01"`
	Password  string `json:"password" example:"Secretp@ssw0rd"`
	StationID string `json:"station_id,omitempty" example:"gate-1"`
}

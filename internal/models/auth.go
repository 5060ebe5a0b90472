package models

// LoginCredentials is the request body for POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries only the access token. The full user profile is
// fetched separately so a slow or failing /user call never blocks login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// RegisterData is the request body for POST /auth/register. A successful
// register never establishes a session.
type RegisterData struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	BirthDate  string `json:"birthDate" validate:"required"`
	Gender     string `json:"gender,omitempty"`
	School     string `json:"school,omitempty"`
	SchoolYear int    `json:"schoolYear,omitempty"`
}

// RefreshResponse may rotate the refresh token; RefreshToken is empty when
// the backend keeps the old one valid.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

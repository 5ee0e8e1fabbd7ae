package dto

import (
	"fmt"
	"strings"
)

// AuthAction selects what POST /login does.
type AuthAction string

// Supported login form actions
const (
	AuthActionSignIn AuthAction = "signin"
	AuthActionSignUp AuthAction = "signup"
)

// ParseAuthAction maps the raw form value to an AuthAction. An empty value
// means sign-in; anything else that is not a known action is an error.
func ParseAuthAction(raw string) (AuthAction, error) {
	switch AuthAction(strings.TrimSpace(raw)) {
	case "", AuthActionSignIn:
		return AuthActionSignIn, nil
	case AuthActionSignUp:
		return AuthActionSignUp, nil
	default:
		return "", fmt.Errorf("unknown login action %q", raw)
	}
}

// LoginForm is the POST /login form body. Field-level checks happen in
// AuthService.ValidateCredentials so the page can show the exact message.
type LoginForm struct {
	Username string `form:"username" json:"username" example:"alice"`
	Password string `form:"password" json:"password" example:"s3cret"`
	Email    string `form:"email" json:"email" example:"alice@example.com"`
	Action   string `form:"action" json:"action" binding:"omitempty,oneof=signin signup" example:"signin" enums:"signin,signup"`
}

// Credentials is the trimmed result of a validated LoginForm.
type Credentials struct {
	Username string
	Password string
	Email    string
}

// LoginPage is the data rendered into login.html
type LoginPage struct {
	Error    string
	Username string
	Email    string
	Action   AuthAction
}

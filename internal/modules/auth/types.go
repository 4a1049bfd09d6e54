package auth

import "errors"

type SignupDTO struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
	Email     string `json:"email"     binding:"required,email"`
	Password  string `json:"password"  binding:"required,min=8"`
}

type LoginDTO struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password"        binding:"required"`
}

type RequestResetDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetTokenDTO struct {
	Token string `json:"token" binding:"required"`
}

type ResetPasswordDTO struct {
	Token       string `json:"token"       binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type loginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errDuplicateEmail     = errors.New("email already registered")
	errResetTokenInvalid  = errors.New("invalid or expired reset token")
)

// resetRequestMessage is identical for known and unknown emails so the
// endpoint cannot be used to enumerate accounts.
const resetRequestMessage = "If an account exists, a password reset email will be sent."

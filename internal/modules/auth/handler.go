package auth

import (
	"errors"

	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
	rg.POST("/request-password-reset", h.requestPasswordReset)
	rg.POST("/verify-reset-token", h.verifyResetToken)
	rg.POST("/reset-password", h.resetPassword)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	_, token, err := h.svc.Signup(&dto)
	if err != nil {
		if errors.Is(err, errDuplicateEmail) {
			response.Conflict(c, "An account with this email already exists")
			return
		}
		response.InternalError(c, "Failed to create user")
		return
	}
	response.OK(c, gin.H{"message": "User created successfully", "token": token})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	token, user, err := h.svc.Login(dto.EmailOrUsername, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.BadRequest(c, "Invalid credentials")
			return
		}
		response.InternalError(c, "Login failed")
		return
	}
	response.OK(c, loginResponse{Token: token, User: user})
}

func (h *Handler) logout(c *gin.Context) {
	// Tokens are stateless; the client discards its copy.
	c.Header("Cache-Control", "no-store")
	response.Message(c, "Logged out successfully")
}

func (h *Handler) requestPasswordReset(c *gin.Context) {
	var dto RequestResetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := h.svc.RequestPasswordReset(dto.Email); err != nil {
		response.InternalError(c, "Failed to process password reset request")
		return
	}
	response.Message(c, resetRequestMessage)
}

func (h *Handler) verifyResetToken(c *gin.Context) {
	var dto VerifyResetTokenDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := h.svc.VerifyResetToken(dto.Token); err != nil {
		if errors.Is(err, errResetTokenInvalid) {
			response.BadRequest(c, "Invalid or expired reset token")
			return
		}
		response.InternalError(c, "Failed to verify token")
		return
	}
	response.OK(c, gin.H{"valid": true})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var dto ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := h.svc.ResetPassword(dto.Token, dto.NewPassword); err != nil {
		if errors.Is(err, errResetTokenInvalid) {
			response.BadRequest(c, "Invalid or expired reset token")
			return
		}
		response.InternalError(c, "Failed to reset password")
		return
	}
	response.Message(c, "Password reset successful")
}

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/models"
	jwtpkg "github.com/codeverse-africa/whingan-core/internal/pkg/jwt"
	"github.com/codeverse-africa/whingan-core/internal/pkg/mail"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 30 * time.Minute

// Service handles signup, login and the password reset flow for both users
// and admins.
type Service struct {
	db          *gorm.DB
	mailer      *mail.Sender
	frontendURL string
	logger      *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, frontendURL string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, mailer: mailer, frontendURL: frontendURL, logger: logger}
}

// Signup creates a portal user with placeholder profile defaults and returns
// a fresh token.
func (s *Service) Signup(dto *SignupDTO) (*models.UserModel, string, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", errDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := models.UserModel{
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Email:           dto.Email,
		Password:        string(hash),
		Role:            "user",
		Address:         "Not Provided",
		LocalGovernment: "Not Specified",
	}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errDuplicateEmail
		}
		return nil, "", err
	}

	token, err := jwtpkg.Sign(u.ID, u.Email, "", jwtpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Login authenticates a user by email or an admin by username through the
// same identifier and issues a time-limited token.
func (s *Service) Login(identifier, password string) (string, loginUser, error) {
	var user models.UserModel
	userErr := s.db.Where("email = ?", identifier).First(&user).Error
	if userErr == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return "", loginUser{}, errInvalidCredentials
		}
		token, err := jwtpkg.Sign(user.ID, user.Email, "", jwtpkg.DefaultTTL)
		return token, loginUser{ID: user.ID, Email: user.Email}, err
	}
	if !errors.Is(userErr, gorm.ErrRecordNotFound) {
		return "", loginUser{}, userErr
	}

	var admin models.AdminModel
	if err := s.db.Where("username = ?", identifier).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", loginUser{}, errInvalidCredentials
		}
		return "", loginUser{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", loginUser{}, errInvalidCredentials
	}
	token, err := jwtpkg.Sign(admin.ID, "", admin.Username, jwtpkg.DefaultTTL)
	return token, loginUser{ID: admin.ID, Email: admin.Username}, err
}

// RequestPasswordReset stores a fresh opaque token on the user row and
// emails a reset link. Unknown emails are a silent no-op.
func (s *Service) RequestPasswordReset(email string) error {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	token := hex.EncodeToString(b)
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.db.Model(&u).Updates(map[string]interface{}{
		"password_reset_token":            token,
		"password_reset_token_expiration": &expiry,
	}).Error; err != nil {
		return err
	}

	resetLink := s.frontendURL + "/career/password-reset?token=" + token
	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(email, mail.PasswordResetData{ResetLink: resetLink}); err != nil {
			s.logger.Error("password reset email failed", zap.Error(err))
		}
	}
	return nil
}

// VerifyResetToken checks token existence and non-expiry.
func (s *Service) VerifyResetToken(token string) error {
	_, err := s.findByResetToken(token)
	return err
}

// ResetPassword re-validates the token, stores the new hash and clears the
// token fields.
func (s *Service) ResetPassword(token, newPassword string) error {
	u, err := s.findByResetToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(u).Updates(map[string]interface{}{
		"password":                        string(hash),
		"password_reset_token":            "",
		"password_reset_token_expiration": nil,
	}).Error
}

func (s *Service) findByResetToken(token string) (*models.UserModel, error) {
	if token == "" {
		return nil, errResetTokenInvalid
	}
	var u models.UserModel
	err := s.db.Where("password_reset_token = ? AND password_reset_token_expiration > ?", token, time.Now()).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errResetTokenInvalid
		}
		return nil, err
	}
	return &u, nil
}

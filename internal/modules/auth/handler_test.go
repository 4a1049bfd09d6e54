package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	signupBody := map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "password123",
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	var signup struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	testutil.Decode(t, w, &signup)
	assert.Equal(t, "User created successfully", signup.Message)
	assert.NotEmpty(t, signup.Token)

	// The fresh token works against a protected route.
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/user", nil, signup.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Email           string `json:"email"`
		Address         string `json:"address"`
		LocalGovernment string `json:"localGovernment"`
		HasAvatar       bool   `json:"hasAvatar"`
	}
	testutil.Decode(t, w, &profile)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Not Provided", profile.Address)
	assert.Equal(t, "Not Specified", profile.LocalGovernment)
	assert.False(t, profile.HasAvatar)

	// Login with the same credentials.
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"emailOrUsername": "ada@example.com",
		"password":        "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	testutil.Decode(t, w, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "ada@example.com", login.User.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	body := map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "dup@example.com",
		"password":  "password123",
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/signup", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/signup", body, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "An account with this email already exists")

	var count int64
	db.Model(&models.UserModel{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSignupValidation(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/signup", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "not-an-email",
		"password":  "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "errors")
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"emailOrUsername": "nobody@example.com",
		"password":        "whatever1",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAdminLoginByUsername(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminModel{Username: "boss", Password: string(hash)}).Error)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"emailOrUsername": "boss",
		"password":        "s3cret-pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	testutil.Decode(t, w, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "boss", login.User.Email)

	// The admin token opens protected content routes.
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/news", map[string]interface{}{
		"title":       "Admin Post",
		"content":     "body",
		"fullContent": "full body",
		"tags":        []string{"update"},
	}, login.Token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLogout(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}

func TestPasswordResetFlow(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	signup := map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "reset@example.com",
		"password":  "password123",
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/signup", signup, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/request-password-reset", map[string]string{
		"email": "reset@example.com",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var u models.UserModel
	require.NoError(t, db.Where("email = ?", "reset@example.com").First(&u).Error)
	require.NotEmpty(t, u.PasswordResetToken)
	require.NotNil(t, u.PasswordResetTokenExpiration)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/verify-reset-token", map[string]string{
		"token": u.PasswordResetToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/reset-password", map[string]string{
		"token":       u.PasswordResetToken,
		"newPassword": "brand-new-pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password reset successful")

	// Old password no longer works, new one does.
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"emailOrUsername": "reset@example.com",
		"password":        "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"emailOrUsername": "reset@example.com",
		"password":        "brand-new-pass",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// The token is single-use.
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/verify-reset-token", map[string]string{
		"token": u.PasswordResetToken,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/request-password-reset", map[string]string{
		"email": "ghost@example.com",
	}, "")
	// Same response as for a known account, so emails cannot be enumerated.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If an account exists")
}

func TestPasswordResetExpiredToken(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)

	expired := time.Now().Add(-time.Minute)
	u := models.UserModel{
		FirstName: "Old", LastName: "Token",
		Email: "expired@example.com", Password: "x",
		PasswordResetToken:           "expired-token",
		PasswordResetTokenExpiration: &expired,
	}
	require.NoError(t, db.Create(&u).Error)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/verify-reset-token", map[string]string{
		"token": "expired-token",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token")
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jrocha/techbook/internal/auth"
	"github.com/jrocha/techbook/pkg/models"
	"github.com/jrocha/techbook/pkg/repository"
)

type AuthHandler struct {
	accountRepo   repository.AccountRepo
	hasher        auth.PasswordHasher
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ar repository.AccountRepo, hasher auth.PasswordHasher, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{accountRepo: ar, hasher: hasher, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, fmt.Errorf("%w: username and password are required", models.ErrValidation))
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, fmt.Errorf("%w: passwords do not match", models.ErrValidation))
		return
	}

	ctx := r.Context()

	// check-then-insert is not atomic; two simultaneous signups with the
	// same username can race. Accepted weakness.
	existing, err := h.accountRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}
	if existing != nil {
		writeError(w, models.ErrUsernameTaken)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		writeError(w, fmt.Errorf("hash password: %w", err))
		return
	}

	account := models.Account{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
	}
	if _, err := h.accountRepo.CreateAccount(ctx, &account); err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	// The signup token records that the user signed up but is not logged
	// in yet; protected routes still require a signin.
	tokenStr, err := h.issueToken(req.Username, true, false)
	if err != nil {
		writeError(w, fmt.Errorf("sign token: %w", err))
		return
	}

	writeJSON(w, authResponse{Token: tokenStr}, http.StatusCreated)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, fmt.Errorf("%w: username and password are required", models.ErrValidation))
		return
	}

	ctx := r.Context()

	account, err := h.accountRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}
	if account == nil {
		writeError(w, fmt.Errorf("%w: no such username", models.ErrNotFound))
		return
	}

	if !h.hasher.Verify(account.PasswordHash, req.Password) {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	tokenStr, err := h.issueToken(req.Username, true, true)
	if err != nil {
		writeError(w, fmt.Errorf("sign token: %w", err))
		return
	}

	writeJSON(w, authResponse{Token: tokenStr}, http.StatusOK)
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, signout is client-side (just delete token)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"message":"signed out"}`)
}

func (h *AuthHandler) issueToken(username string, signedUp, loggedIn bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":  username,
		"signed_up": signedUp,
		"logged_in": loggedIn,
		"exp":       time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}

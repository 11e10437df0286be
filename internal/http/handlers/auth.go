package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
	"server/internal/middleware"
)

const (
	tokenIssuer   = "transcript-api"
	tokenAudience = "transcript-clients"
	tokenLifetime = 24 * time.Hour
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  profileDTO `json:"user"`
}

func (a *App) AuthSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create account")
		return
	}
	account, err := a.Accounts.Create(r.Context(), req.Email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			a.error(w, http.StatusConflict, "email_taken", "email already registered")
			return
		}
		a.Logger.Error().Err(err).Msg("create account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create account")
		return
	}
	profile := &domain.Profile{ID: account.ID, Email: account.Email, FullName: req.FullName}
	if err := a.Profiles.Insert(r.Context(), profile); err != nil {
		a.Logger.Error().Err(err).Str("user_id", account.ID).Msg("create profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create profile")
		return
	}
	props := map[string]any{}
	if country := a.signupCountry(r); country != "" {
		props["country"] = country
	}
	a.recordUsage(r.Context(), domain.UsageEvent{
		UserID:     account.ID,
		Kind:       domain.UsageKindSignup,
		Success:    true,
		Properties: props,
	})
	a.json(w, http.StatusCreated, map[string]string{
		"status":  "pending_approval",
		"message": "account created, awaiting admin approval",
	})
}

func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}
	account, err := a.Accounts.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
			return
		}
		a.Logger.Error().Err(err).Msg("lookup account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign in")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}
	profile, ok := a.loadProfile(r.Context(), account.ID)
	if !ok {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	var name string
	if profile != nil {
		name = profile.FullName
	}
	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      account.ID,
		Name:     name,
		Exp:      time.Now().Add(tokenLifetime).Unix(),
		Issuer:   tokenIssuer,
		Audience: tokenAudience,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: token, User: a.profileDTO(profile)})
}

func (a *App) signupCountry(r *http.Request) string {
	if a.GeoIP == nil {
		return ""
	}
	ip := middleware.ClientIP(r)
	if ip == "" {
		return ""
	}
	country, err := a.GeoIP.CountryCode(ip)
	if err != nil {
		a.Logger.Debug().Err(err).Str("ip", ip).Msg("geoip lookup failed")
		return ""
	}
	return country
}

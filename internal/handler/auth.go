package handler

import (
	"crypto/subtle"
	"database/sql"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/config"
	"github.com/vitaltrack/wellness-platform/internal/middleware"
	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/repository"
	"github.com/vitaltrack/wellness-platform/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerAdminReq struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userTypeReq struct {
	UserType string `json:"userType"`
}

type sessionPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type userPart struct {
	ID       uint64  `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
	UserType *string `json:"userType"`
}

type authResp struct {
	User    userPart    `json:"user"`
	Session sessionPart `json:"session"`
}

func toUserPart(u model.User) userPart {
	return userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, UserType: u.UserType}
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

// setSessionCookie stores the session token in an HttpOnly cookie so browser
// clients carry it automatically; API clients may instead use the token from
// the response body as a bearer header.
func setSessionCookie(c echo.Context, tok utils.SessionToken) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tok.Token,
		Expires:  tok.Exp,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register: create a regular user account and open a session immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !validEmail(req.Email) || len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, valid email and password (min 8 chars) required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, model.RoleUser, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, uid, h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	setSessionCookie(c, tok)

	return c.JSON(http.StatusCreated, authResp{
		User:    userPart{ID: uid, Name: &req.Name, Email: &req.Email, Role: model.RoleUser},
		Session: sessionPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// RegisterAdmin: create an admin account. Gated by a shared bootstrap secret
// compared in constant time; with no secret configured the endpoint is
// disabled entirely.
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if h.Cfg.AdminSecret == "" ||
		subtle.ConstantTimeCompare([]byte(req.SecretKey), []byte(h.Cfg.AdminSecret)) != 1 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid secret key"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !validEmail(req.Email) || len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, valid email and password (min 8 chars) required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, model.RoleAdmin, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "admin user created"})
}

// Login: verify credentials and open a session.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, false)
}

// LoginAdmin: like Login but additionally requires the admin role.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, true)
}

func (h *AuthHandler) login(c echo.Context, wantAdmin bool) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u.PasswordHash == nil || !utils.VerifyPassword(*u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if wantAdmin && !u.IsAdmin() {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	setSessionCookie(c, tok)
	_ = h.Users.TouchLastSignedIn(ctx, u.ID)

	return c.JSON(http.StatusOK, authResp{
		User:    toUserPart(u),
		Session: sessionPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// Logout: clear the session cookie. The token itself simply expires; there
// is no server-side session state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me: return the caller's stored user row.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return c.JSON(http.StatusOK, toUserPart(u))
}

// UpdateUserType: set the caller's cached profile type directly. Normally
// the type is stamped by the registration transaction; this endpoint exists
// for clients that pick a profile type before filling the profile form.
func (h *AuthHandler) UpdateUserType(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var req userTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch req.UserType {
	case model.UserTypeCompany, model.UserTypeEmployee, model.UserTypeProfessional, model.UserTypeAdmin:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid userType"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Users.UpdateUserType(ctx, u.ID, req.UserType); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

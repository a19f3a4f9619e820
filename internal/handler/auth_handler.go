package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /api/auth のHTTP。エンジン本体はScope経由で受け取る。
type AuthHandler struct {
	secret     []byte
	sessionTTL time.Duration
}

// DI
func NewAuthHandler(secret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	guard := middleware.SessionToken(string(h.secret))
	g.GET("/me", h.me, guard)
	g.PATCH("/profile", h.profile, guard)
}

// POST /api/auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	user, err := ScopeFrom(c).Auth.Register(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return h.respondWithToken(c, user)
}

// POST /api/auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	user, err := ScopeFrom(c).Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}

	return h.respondWithToken(c, user)
}

// POST /api/auth/logout
func (h *AuthHandler) logout(c echo.Context) error {
	if err := ScopeFrom(c).Auth.Logout(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
	}
	return c.JSON(http.StatusOK, authResponse{Success: true})
}

// GET /api/auth/me
func (h *AuthHandler) me(c echo.Context) error {
	user, ok := ScopeFrom(c).Auth.CurrentUser()
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, User: &user})
}

// PATCH /api/auth/profile
// 渡されたフィールドだけ被せるシャローマージ。
func (h *AuthHandler) profile(c echo.Context) error {
	auth := ScopeFrom(c).Auth
	if !auth.IsAuthenticated() {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var upd usecase.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := auth.UpdateProfile(c.Request().Context(), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
	}

	user, _ := auth.CurrentUser()
	return c.JSON(http.StatusOK, authResponse{Success: true, User: &user})
}

func (h *AuthHandler) respondWithToken(c echo.Context, user *model.User) error {
	token, err := h.issueToken(*user, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, User: user, Token: token})
}

// HS256でセッショントークンを発行。
func (h *AuthHandler) issueToken(user model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(h.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// エンジンの結果エラーをHTTPステータスに写す。
// メッセージはそのまま画面に出す前提なので書き換えない。
func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errJSON(err.Error()))
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, errJSON(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
	}
}

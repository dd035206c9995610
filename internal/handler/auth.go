package handler

import (
	"context"      // context with cancellation for DB calls
	"database/sql" // sentinel errors like sql.ErrNoRows
	"errors"
	"log"
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/config"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/queue"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	queue_publisher "github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/service"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, s *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies a username/password pair and issues a signed bearer
// token.  The failure message is identical for an unknown user and a
// wrong password so the response never confirms that an account exists.
// The session row and the queue event are best-effort side records: their
// failure is logged and swallowed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing username or password"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing username or password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
		}
		log.Printf("Login Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal Server Error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}

	tok, err := utils.NewLoginToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.TokenTTLHours)
	if err != nil {
		log.Printf("Login Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal Server Error"})
	}

	ip := c.RealIP()
	device := c.Request().Header.Get("User-Agent")
	if device == "" {
		device = "Unknown Device"
	}

	// Side records.  Neither may fail the login.
	if err := h.Sessions.Record(ctx, model.Session{
		Token:      tok.Token,
		UserID:     u.ID,
		ExpiryTime: tok.Exp,
		IPAddress:  ip,
		DeviceInfo: device,
	}); err != nil {
		log.Printf("Error logging session: %v", err)
	}
	_ = queue_publisher.PublishLoginRecorded(ctx, queue.LoginRecordedEvent{
		UserID:    u.ID,
		Username:  u.Username,
		IPAddress: ip,
		Device:    device,
		IssuedAt:  time.Now().UTC().Format(time.RFC3339),
		ExpiresAt: tok.Exp.Format(time.RFC3339),
	})

	if err := h.Users.TouchLastLogin(ctx, u.ID); err != nil {
		log.Printf("Login Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Login Successful", "token": tok.Token})
}

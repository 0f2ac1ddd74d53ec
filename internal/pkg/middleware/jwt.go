package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/models"
)

// ContextKeyUserID is the echo context key carrying the authenticated user id
const ContextKeyUserID = "user_id"

// JWTMiddleware extracts the caller identity from a bearer token. Token
// minting happens in the external auth layer; this side only verifies and
// threads the user id through the request context.
type JWTMiddleware struct {
	cfg models.JWTConfig
}

// NewJWTMiddleware creates a new JWT middleware
func NewJWTMiddleware(cfg models.JWTConfig) *JWTMiddleware {
	return &JWTMiddleware{cfg: cfg}
}

// Handler returns the echo middleware validating tokens and storing user_id
func (m *JWTMiddleware) Handler() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(m.cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set(ContextKeyUserID, userID)
				}
			}
		},
	})
}

// CallerID returns the authenticated user id from the request context
func CallerID(c echo.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(ContextKeyUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

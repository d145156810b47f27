package http

import (
	"net/http"
	"strings"

	"sendit/internal/adapters/in/http/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// requireAuth rejects requests without a valid Bearer token and stores the
// verified claims in the request context for downstream handlers.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		claims, err := s.authService.VerifyToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid token",
			})
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// requireAdmin allows only tokens carrying the admin role. Must run after
// requireAuth.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := requestClaims(c)
		if claims == nil || claims.Role != user.Admin.String() {
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "admin role required",
			})
		}
		return next(c)
	}
}

func requestClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

// requestUserID returns the authenticated user's ID. The claims were
// validated by requireAuth, so a parse failure here means the middleware was
// skipped.
func requestUserID(c echo.Context) (kernel.UUID, error) {
	claims := requestClaims(c)
	if claims == nil {
		return kernel.UUID{}, auth.ErrInvalidToken
	}
	return kernel.UUIDFromString(claims.UserID)
}

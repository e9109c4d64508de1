package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"learntrack/internal/response"
)

// contextKey is where the middleware stores the verified claims.
const contextKey = "user"

// ErrNoIdentity is returned by CurrentUser when the context carries no
// verified claims, i.e. the route was not registered behind Middleware.
var ErrNoIdentity = errors.New("no authenticated user in context")

// Middleware builds the request gate for authenticated routes. It extracts
// a bearer token from the Authorization header, verifies it through svc and
// stores the typed claims in the request context. The three rejection cases
// keep distinct messages: clients surface them to users.
func Middleware(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return svc.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return response.Fail(c, http.StatusUnauthorized, "token expired")
			case errors.Is(err, ErrTokenInvalid):
				return response.Fail(c, http.StatusUnauthorized, "invalid token")
			default:
				return response.Fail(c, http.StatusUnauthorized, "token not provided")
			}
		},
	})
}

// CurrentUser returns the identity attached by Middleware.
func CurrentUser(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(contextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoIdentity
	}
	return claims, nil
}

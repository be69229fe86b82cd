package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth verifies the bearer token and injects its claims into the request
// context under "sub" and "role". An expired token fails verification,
// so it behaves exactly like a missing credential.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, keyFunc,
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("sub", claims["sub"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

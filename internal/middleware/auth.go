package middleware

import (
	"net/http"

	"mileage-logbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextUserKey is where the JWT middleware stores the verified subject.
// Protected handlers read it back with c.Get(ContextUserKey).(string).
const ContextUserKey = "userID"

// VerifyToken is the single verification routine shared by every protected
// route: it checks the HS256 signature and the audience claim, and returns
// the token's subject (the user ID). Any failure comes back as
// models.ErrInvalidToken so callers map it to 401 uniformly.
func VerifyToken(tokenString, secret, audience string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", models.ErrInvalidToken
	}
	return sub, nil
}

// JWT returns the middleware guarding every user-scoped route. A missing,
// malformed, or failed bearer token is rejected with 401 before any handler
// or database code runs.
func JWT(secret, audience string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return VerifyToken(auth, secret, audience)
		},
		SuccessHandler: func(c echo.Context) {
			c.Set(ContextUserKey, c.Get("user").(string))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "missing or invalid bearer token"})
		},
	})
}

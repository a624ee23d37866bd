package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Inspector reads claims out of platform-issued access tokens. The token is
// verified server-side; the client only needs the expiry to schedule a
// refresh before the backend starts answering 403.
type Inspector struct {
	parser *jwt.Parser
}

func New() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
	}
}

func (i *Inspector) ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}

	_, _, err := i.parser.ParseUnverified(tokenString, &claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}

func (i *Inspector) Subject(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}

	_, _, err := i.parser.ParseUnverified(tokenString, &claims)
	if err != nil {
		return "", fmt.Errorf("failed to parse access token: %w", err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("access token has no subject claim")
	}

	return claims.Subject, nil
}

// RefreshDeadline returns when a proactive refresh should run: one minute
// before expiry, clamped to now for tokens already in their final minute.
func (i *Inspector) RefreshDeadline(tokenString string) (time.Time, error) {
	expiresAt, err := i.ExpiresAt(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	deadline := expiresAt.Add(-time.Minute)
	if now := time.Now(); deadline.Before(now) {
		return now, nil
	}

	return deadline, nil
}

package web

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
)

var ErrUnauthorized = errors.New("unauthorized")

const tokenCookie = "token"

// GenerateToken signs an api token for subject. Write endpoints accept it as
// a bearer token or a "token" cookie.
func GenerateToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty api token secret")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: now.Add(ttl).Unix(),
		IssuedAt:  now.Unix(),
		Subject:   subject,
	})
	return token.SignedString([]byte(secret))
}

// ParseToken returns the subject of a valid token.
func ParseToken(secret, tokenString string) (string, error) {
	if secret == "" || tokenString == "" {
		return "", ErrUnauthorized
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "", errors.Join(ErrUnauthorized, errors.New("token expired"))
		}
		return "", ErrUnauthorized
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *Server) requireToken(ctx *fiber.Ctx) error {
	raw := ctx.Cookies(tokenCookie)
	if header := ctx.Get(fiber.HeaderAuthorization); header != "" {
		raw = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	subject, err := ParseToken(s.cfg.ApiTokenSecret, raw)
	if err != nil {
		return err
	}
	ctx.Locals(subjectKey, subject)
	return ctx.Next()
}

const subjectKey = "subject"

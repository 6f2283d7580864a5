package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const docsScope = "docs"

// GenerateDocsToken creates the signed token stored in the documentation
// access cookie.
func GenerateDocsToken(secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"scope": docsScope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// ValidateDocsToken reports whether the token is a currently valid docs
// access grant.
func ValidateDocsToken(secret, token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	scope, _ := claims["scope"].(string)
	return scope == docsScope
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Realm identifies which principal namespace a token belongs to. Each realm
// signs with its own secret, so a token minted for one realm never validates
// against the other.
type Realm string

const (
	RealmUser  Realm = "user"
	RealmAdmin Realm = "admin"
)

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, expired, malformed, or minted for a different realm.
var ErrInvalidToken = errors.New("invalid token")

// Claims holds the signed token payload. Subject carries the principal's
// document id as a hex string.
type Claims struct {
	Realm Realm `json:"realm"`
	jwt.RegisteredClaims
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken creates a signed HS256 token for the given principal.
func GenerateToken(principalID string, realm Realm, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		Realm: realm,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies a token against the given realm's secret and returns
// the principal id it was minted for.
func ParseToken(tokenString string, realm Realm, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Realm != realm || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

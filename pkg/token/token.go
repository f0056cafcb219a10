package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Audience distinguishes the account module a token was issued for.
// Coach sessions are short-lived; member sessions persist for 30 days.
type Audience string

const (
	AudienceCoach  Audience = "coach"
	AudienceMember Audience = "member"
)

func (a Audience) ttl() time.Duration {
	if a == AudienceCoach {
		return time.Hour
	}
	return 30 * 24 * time.Hour
}

// Claims is the JWT claim set carried by coach and member sessions.
type Claims struct {
	AccountID string   `json:"account_id"`
	Email     string   `json:"email"`
	Audience  Audience `json:"aud_module"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Generate issues a signed token for the given account and audience.
func (m *Manager) Generate(accountID, email string, aud Audience) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		Audience:  aud,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(aud.ttl())),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fitcenter-backend",
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Validate parses the token string and checks the signature and the
// expected audience.
func (m *Manager) Validate(tokenString string, aud Audience) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Audience != aud {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package token

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

const tokenTTL = time.Hour

type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type Issuer interface {
	Issue(username string) (string, error)
}

type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue mints an HS256 access token bound to the username, expiring
// one hour after issuance.
func (m *Manager) Issue(username string) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	})
	return t.SignedString(m.secret)
}

func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	hashSecretGetter := func(t *jwt.Token) (interface{}, error) {
		method, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, errors.New("bad sign method")
		}
		return m.secret, nil
	}

	t, err := jwt.ParseWithClaims(raw, claims, hashSecretGetter)
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.Username == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

const DefaultTokenTTL = 16 * time.Hour

// Claims is the token payload: the principal id under "id".
type Claims struct {
	PrincipalID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens. Secrets are read once at
// construction and never change.
type TokenService struct {
	secrets map[PrincipalType][]byte
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenService(barbershopSecret, barberSecret string, ttl time.Duration) (*TokenService, error) {
	if barbershopSecret == "" || barberSecret == "" {
		return nil, errors.New("both signing secrets are required")
	}
	if barbershopSecret == barberSecret {
		return nil, errors.New("signing secrets must be distinct per principal type")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secrets: map[PrincipalType][]byte{
			PrincipalBarbershop: []byte(barbershopSecret),
			PrincipalBarber:     []byte(barberSecret),
		},
		ttl: ttl,
		now: time.Now,
	}, nil
}

// WithClock replaces the time source. Used by tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) secret(pt PrincipalType) ([]byte, error) {
	secret, ok := s.secrets[pt]
	if !ok {
		return nil, fmt.Errorf("unknown principal type %d", pt)
	}
	return secret, nil
}

// Issue signs a token for id with the secret of pt.
func (s *TokenService) Issue(id uint, pt PrincipalType) (string, time.Time, error) {
	secret, err := s.secret(pt)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := &Claims{
		PrincipalID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify returns the principal id embedded in token, or InvalidToken when
// the signature does not validate under pt's secret, the token expired, or
// it is malformed.
func (s *TokenService) Verify(token string, pt PrincipalType) (uint, error) {
	secret, err := s.secret(pt)
	if err != nil {
		return 0, httperr.InvalidToken()
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, httperr.InvalidToken()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.PrincipalID == 0 {
		return 0, httperr.InvalidToken()
	}
	return claims.PrincipalID, nil
}

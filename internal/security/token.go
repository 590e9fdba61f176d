package security

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	securityerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/security/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess = "access"
	DefaultTokenTTL = 24 * time.Hour
)

var (
	registeredClaims = []string{"exp", "iat", "type", "jti"}
	signingMethod    = jwt.SigningMethodHS256
)

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type TokenService interface {
	Issue(claims map[string]any, ttl time.Duration) (string, error)
	Verify(token string, verifyType bool) (jwt.MapClaims, error)
	Refresh(token string) (string, error)
}

type tokenService struct {
	secret []byte
	keyID  string
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*tokenService)

// WithClock replaces the time source used for iat, exp and verification.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

func NewTokenService(cfg config.SecurityConfig, opts ...TokenOption) TokenService {
	s := &tokenService{
		secret: []byte(cfg.JWTSecret),
		keyID:  cfg.KeyID,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
	if s.keyID == "" {
		s.keyID = "v1"
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTokenTTL
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs claims plus iat, exp, type and jti. A non-positive ttl uses the
// configured default.
func (s *tokenService) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := s.now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(ttl).Unix()
	mc["type"] = TokenTypeAccess
	mc["jti"] = tokenID(now)

	token := jwt.NewWithClaims(signingMethod, mc)
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", securityerrors.ErrSigningFailed(err)
	}
	return signed, nil
}

func (s *tokenService) Verify(tokenString string, verifyType bool) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, securityerrors.ErrTokenExpired
		}
		return nil, securityerrors.ErrInvalidToken
	}

	for _, name := range registeredClaims {
		if _, ok := claims[name]; !ok {
			return nil, securityerrors.ErrMissingClaim(name)
		}
	}

	if verifyType {
		if typ, _ := claims["type"].(string); typ != TokenTypeAccess {
			return nil, securityerrors.ErrInvalidTokenType
		}
	}

	return claims, nil
}

// Refresh re-issues a valid token with the same caller claims and a new
// lifetime.
func (s *tokenService) Refresh(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString, true)
	if err != nil {
		return "", err
	}

	payload := make(map[string]any, len(claims))
	for k, v := range claims {
		payload[k] = v
	}
	for _, name := range registeredClaims {
		delete(payload, name)
	}

	return s.Issue(payload, 0)
}

func (s *tokenService) keyFunc(token *jwt.Token) (any, error) {
	if kid, _ := token.Header["kid"].(string); kid != s.keyID {
		return nil, errors.New("unknown key id")
	}
	return s.secret, nil
}

func tokenID(issuedAt time.Time) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(issuedAt.UnixNano(), 10)))
	return hex.EncodeToString(sum[:])
}

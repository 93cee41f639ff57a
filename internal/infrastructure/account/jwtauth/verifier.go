package jwtauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// Claims carries the principal fields in an HS256 bearer token.
type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates locally signed tokens and turns them into principals.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if len(secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 characters")
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		leeway: 30 * time.Second,
		now:    time.Now,
	}, nil
}

func (v *Verifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, v.keyFunc, opts...); err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthorized, err)
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return user.Principal{}, fmt.Errorf("%w: token has no subject", usecase.ErrUnauthorized)
	}

	return user.Principal{
		UserID:   subject,
		Username: strings.TrimSpace(claims.Username),
		Email:    strings.TrimSpace(claims.Email),
		Role:     user.ParseRole(claims.Role),
	}, nil
}

// Issue signs a token for principal; used by operators and tests to mint credentials.
func (v *Verifier) Issue(principal user.Principal, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Username: principal.Username,
		Email:    principal.Email,
		Role:     string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Newf("unexpected signing method %v", token.Header["alg"])
	}
	return v.secret, nil
}

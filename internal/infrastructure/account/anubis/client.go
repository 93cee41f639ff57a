package anubis

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const (
	adminKeyHeader = "x-admin-key"
	adminRole      = "admin"
	maxBodyBytes   = 1 << 20
)

// errTransient marks introspection failures that count against the breaker.
var errTransient = errors.New("anubis transient failure")

// Client verifies bearer tokens against an anubis introspection endpoint.
// Active principals are cached by token hash for cacheTTL.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.CircuitBreaker
	tokens        *cache.Store
	logger        *logging.Logger
}

type Options struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

func NewClient(httpClient *http.Client, opts Options, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: introspectionURL(opts.BaseURL, opts.IntrospectPath),
		adminKey:      strings.TrimSpace(opts.AdminKey),
		breaker:       resilience.NewFromConfig(opts.CircuitBreaker),
		tokens:        cache.NewStore(opts.CacheTTL),
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := tokenCacheKey(token)
	if cached, ok := c.tokens.Get(ctx, key); ok {
		if principal, ok := cached.(user.Principal); ok {
			return principal, nil
		}
	}

	var principal user.Principal
	err := c.breaker.Execute(func() error {
		var err error
		principal, err = c.introspect(ctx, token)
		return err
	}, func(err error) bool { return errors.Is(err, errTransient) })
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, errTransient) {
			c.logger.WarnContext(ctx, "anubis introspection unavailable", "error", err)
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return user.Principal{}, err
	}

	c.tokens.Set(ctx, key, principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set(adminKeyHeader, c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request introspection: %v", errTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		// 403 is the admin key being refused, not the caller.
		return user.Principal{}, fmt.Errorf("%w: introspection forbidden", errTransient)
	case resp.StatusCode >= http.StatusInternalServerError:
		return user.Principal{}, fmt.Errorf("%w: introspection status %d", errTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: introspection status %d", usecase.ErrUnauthorized, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: read introspect response: %v", errTransient, err)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, errors.Wrap(err, "unmarshal introspect response")
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response has no user_id", usecase.ErrUnauthorized)
	}

	return decoded.principal(), nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active   bool     `json:"active"`
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (r introspectResponse) principal() user.Principal {
	role := user.RoleStandard
	for _, item := range r.Roles {
		if strings.EqualFold(strings.TrimSpace(item), adminRole) {
			role = user.RoleAdmin
			break
		}
	}

	return user.Principal{
		UserID:   strings.TrimSpace(r.UserID),
		Username: strings.TrimSpace(r.Username),
		Email:    strings.TrimSpace(r.Email),
		Role:     role,
	}
}

// tokenCacheKey keeps raw bearer tokens out of the principal cache.
func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}

// introspectionURL joins path onto base unless path is already absolute.
func introspectionURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return base
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

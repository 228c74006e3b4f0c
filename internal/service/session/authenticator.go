package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/medidash/clinic-api/pkg/circuitbreaker"
)

// Authenticator is the external credential-checking collaborator. The gate
// only understands its boolean answer; wrong credentials and transport
// failures both come back as "not authenticated".
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (bool, error)
}

// HTTPAuthenticator posts credentials to the collaborator's login endpoint
// and treats exactly status 200 as authenticated. A circuit breaker keeps
// an unreachable collaborator from being hammered on every login attempt;
// only transport failures trip it, rejected credentials are a valid answer.
type HTTPAuthenticator struct {
	client  *http.Client
	url     string
	breaker *circuitbreaker.CircuitBreaker
}

func NewHTTPAuthenticator(url string) *HTTPAuthenticator {
	return &HTTPAuthenticator{
		client: http.DefaultClient,
		url:    url,
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name:        "auth-service",
			MaxFailures: 5,
			Cooldown:    15 * time.Second,
		}),
	}
}

func (a *HTTPAuthenticator) Authenticate(ctx context.Context, email, password string) (bool, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode credentials: %w", err)
	}

	var ok bool
	err = a.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build login request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := a.client.Do(req)
		if err != nil {
			return fmt.Errorf("login request failed: %w", err)
		}
		defer resp.Body.Close()

		ok = resp.StatusCode == http.StatusOK
		return nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "auth-service"

	verifyPath = "/verify"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var (
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrUnavailable       = errors.New("auth service unavailable")
)

// Gateway обменивает bearer-токен на проверенную пару (subject id, роль).
// Само ядро токены не разбирает и не верифицирует.
type Gateway struct {
	client  httpDoer
	baseURL string
	retrier retrier
}

func New(client httpDoer, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
}

func (g *Gateway) VerifyToken(ctx context.Context, token string) (*entities.Actor, error) {
	var actor *entities.Actor

	err := g.executeWithMetrics(ctx, "VerifyToken", func(ctx context.Context) error {
		var err error
		actor, err = g.verify(ctx, token)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway auth, verify token: %w", err)
	}

	return actor, nil
}

func (g *Gateway) verify(ctx context.Context, token string) (*entities.Actor, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+verifyPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidCredential
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("auth service returned unexpected status %d", resp.StatusCode)
	}

	var verified verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verified); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	if verified.SubjectID == "" || !isKnownRole(verified.Role) {
		return nil, fmt.Errorf("auth service returned malformed subject: %q/%q", verified.SubjectID, verified.Role)
	}

	return &entities.Actor{
		SubjectID: verified.SubjectID,
		Role:      entities.ActorRole(verified.Role),
	}, nil
}

func isKnownRole(role string) bool {
	switch entities.ActorRole(role) {
	case entities.RoleClient, entities.RoleOperator, entities.RoleSupervisor:
		return true
	default:
		return false
	}
}

// Ретраим только транзиентные отказы; невалидный токен детерминирован
// и повтор его не исправит.
func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := outcomeLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, strconv.FormatUint(attempt, 10)).Inc()
	}

	return err
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCredential):
		return "denied"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

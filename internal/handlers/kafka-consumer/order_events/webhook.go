package order_events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 1 * time.Minute
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

var errWebhookRejected = errors.New("webhook rejected the event")

// Webhook delivers payloads over HTTP POST with bounded retries.
// Client errors are permanent, server errors and throttling retry.
type Webhook struct {
	client  httpDoer
	url     string
	retrier retrier
}

func NewWebhook(client httpDoer, url string) *Webhook {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Webhook{
		client:  client,
		url:     url,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (w *Webhook) Send(ctx context.Context, payload []byte) error {
	return w.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("%w: %w", errWebhookRejected, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.client.Do(req)
		if err != nil {
			return fmt.Errorf("webhook request: %w", err)
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("webhook responded %d", resp.StatusCode)
		}

		return fmt.Errorf("%w: status %d", errWebhookRejected, resp.StatusCode)
	})
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, errWebhookRejected)
}

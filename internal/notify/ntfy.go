package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"

	"productivity-clock/internal/errors"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/validation"
)

// NtfyConfig configures an NtfySink.
type NtfyConfig struct {
	Server       string
	Topic        string
	Timeout      time.Duration
	MaxAttempts  int
	InitialDelay time.Duration
}

// NtfySink publishes notifications to an ntfy topic over HTTP.
type NtfySink struct {
	cfg    NtfyConfig
	client *http.Client
}

// NewNtfySink validates cfg and returns a sink. A nil client means http.DefaultClient.
func NewNtfySink(cfg NtfyConfig, client *http.Client) (*NtfySink, error) {
	if err := ValidateSettings(cfg.Server, cfg.Topic); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if client == nil {
		client = http.DefaultClient
	}
	cfg.Server = strings.TrimRight(cfg.Server, "/")
	return &NtfySink{cfg: cfg, client: client}, nil
}

// ValidateSettings checks that server is an absolute http(s) URL and that
// topic only uses letters, digits, dashes and underscores.
func ValidateSettings(server, topic string) error {
	return validation.NewNotificationValidator().ValidateSettings(server, topic)
}

// URL returns the topic endpoint.
func (s *NtfySink) URL() string {
	return s.cfg.Server + "/" + s.cfg.Topic
}

// Notify posts n to the topic, retrying failed attempts within the configured timeout.
func (s *NtfySink) Notify(ctx context.Context, n Notification) error {
	r := retry.New[int](retry.Config{
		MaxAttempts:   s.cfg.MaxAttempts,
		InitialDelay:  s.cfg.InitialDelay,
		BackoffPolicy: retry.BackoffExponential,
	})
	t := timeout.New[int](timeout.Config{
		DefaultTimeout: s.cfg.Timeout,
	})

	status, err := t.Execute(ctx, s.cfg.Timeout, func(ctx context.Context) (int, error) {
		return r.Do(ctx, func(ctx context.Context) (int, error) {
			return s.post(ctx, n)
		})
	})
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.NewTimeoutError("notify "+s.URL(), s.cfg.Timeout.String())
		}
		return errors.NewNotificationError(s.URL(), err)
	}

	logging.Debugf("ntfy: delivered %q to %s (%d)\n", n.Title, s.URL(), status)
	return nil
}

func (s *NtfySink) post(ctx context.Context, n Notification) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL(), strings.NewReader(n.Body))
	if err != nil {
		return 0, err
	}
	if n.Title != "" {
		req.Header.Set("Title", n.Title)
	}
	if n.Priority != "" {
		req.Header.Set("Priority", n.Priority)
	}
	if n.Tags != "" {
		req.Header.Set("Tags", n.Tags)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logging.Debugf("ntfy: attempt failed: %v\n", err)
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debugf("ntfy: attempt rejected with %s\n", resp.Status)
		return resp.StatusCode, fmt.Errorf("ntfy returned %s", resp.Status)
	}
	return resp.StatusCode, nil
}

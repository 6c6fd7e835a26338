package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"slate/internal/config"
)

const userAgent = "Slate/0.1.0"

// Service defines the notification surface exposed to pipeline commands.
type Service interface {
	RenderStarted(ctx context.Context, jobName string) error
	RenderCompleted(ctx context.Context, jobName string, elapsed time.Duration) error
	RenderFailed(ctx context.Context, jobName string, cause error) error
	Test(ctx context.Context) error
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

// NewService builds the fan-out notification service from config. Backends
// that are not configured are skipped; with nothing configured a noop
// implementation is returned.
func NewService(cfg *config.Config) Service {
	var backends []Service

	if topic := strings.TrimSpace(cfg.Notifications.NtfyTopic); topic != "" {
		timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		backends = append(backends, &ntfyService{
			endpoint: topic,
			client:   &http.Client{Timeout: timeout},
		})
	}

	if cfg.EmailConfigured() {
		backends = append(backends, &emailService{
			binary: cfg.Notifications.SendemailBinary,
			from:   cfg.Notifications.EmailFrom,
			to:     cfg.Notifications.EmailTo,
			server: cfg.Notifications.SMTPServer,
		})
	}

	switch len(backends) {
	case 0:
		return noopService{}
	case 1:
		return backends[0]
	default:
		return multiService(backends)
	}
}

// multiService fans a notification out to every configured backend and
// joins their errors.
type multiService []Service

func (m multiService) RenderStarted(ctx context.Context, jobName string) error {
	var errs []error
	for _, svc := range m {
		errs = append(errs, svc.RenderStarted(ctx, jobName))
	}
	return errors.Join(errs...)
}

func (m multiService) RenderCompleted(ctx context.Context, jobName string, elapsed time.Duration) error {
	var errs []error
	for _, svc := range m {
		errs = append(errs, svc.RenderCompleted(ctx, jobName, elapsed))
	}
	return errors.Join(errs...)
}

func (m multiService) RenderFailed(ctx context.Context, jobName string, cause error) error {
	var errs []error
	for _, svc := range m {
		errs = append(errs, svc.RenderFailed(ctx, jobName, cause))
	}
	return errors.Join(errs...)
}

func (m multiService) Test(ctx context.Context) error {
	var errs []error
	for _, svc := range m {
		errs = append(errs, svc.Test(ctx))
	}
	return errors.Join(errs...)
}

func startedPayload(jobName string) payload {
	return payload{
		title:   "Slate - Render Started",
		message: fmt.Sprintf("Started: %s", strings.TrimSpace(jobName)),
		tags:    []string{"slate", "render", "started"},
	}
}

func completedPayload(jobName string, elapsed time.Duration) payload {
	elapsed = elapsed.Round(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	return payload{
		title:    "Slate - Render Complete",
		message:  fmt.Sprintf("Finished: %s in %s", strings.TrimSpace(jobName), elapsed),
		tags:     []string{"slate", "render", "completed"},
		priority: "high",
	}
}

func failedPayload(jobName string, cause error) payload {
	var builder strings.Builder
	builder.WriteString("Failed: ")
	builder.WriteString(strings.TrimSpace(jobName))
	if cause != nil {
		builder.WriteString("\n")
		builder.WriteString(strings.TrimSpace(cause.Error()))
	}
	return payload{
		title:    "Slate - Render Failed",
		message:  builder.String(),
		tags:     []string{"slate", "render", "failed"},
		priority: "high",
	}
}

func testPayload() payload {
	return payload{
		title:    "Slate - Test",
		message:  "Notification system test",
		tags:     []string{"slate", "test"},
		priority: "low",
	}
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) RenderStarted(ctx context.Context, jobName string) error {
	return n.send(ctx, startedPayload(jobName))
}

func (n *ntfyService) RenderCompleted(ctx context.Context, jobName string, elapsed time.Duration) error {
	return n.send(ctx, completedPayload(jobName, elapsed))
}

func (n *ntfyService) RenderFailed(ctx context.Context, jobName string, cause error) error {
	return n.send(ctx, failedPayload(jobName, cause))
}

func (n *ntfyService) Test(ctx context.Context) error {
	return n.send(ctx, testPayload())
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) RenderStarted(context.Context, string) error                  { return nil }
func (noopService) RenderCompleted(context.Context, string, time.Duration) error { return nil }
func (noopService) RenderFailed(context.Context, string, error) error            { return nil }
func (noopService) Test(context.Context) error                                   { return nil }

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// emailService delivers notifications through the studio's sendemail CLI.
type emailService struct {
	binary string
	from   string
	to     string
	server string
}

func (e *emailService) RenderStarted(ctx context.Context, jobName string) error {
	return e.send(ctx, startedPayload(jobName))
}

func (e *emailService) RenderCompleted(ctx context.Context, jobName string, elapsed time.Duration) error {
	return e.send(ctx, completedPayload(jobName, elapsed))
}

func (e *emailService) RenderFailed(ctx context.Context, jobName string, cause error) error {
	return e.send(ctx, failedPayload(jobName, cause))
}

func (e *emailService) Test(ctx context.Context) error {
	return e.send(ctx, testPayload())
}

func (e *emailService) send(ctx context.Context, data payload) error {
	args := []string{
		"-f", e.from,
		"-t", e.to,
		"-s", e.server,
		"-u", data.title,
		"-m", data.message,
		"-o", "tls=auto",
	}
	cmd := commandContext(ctx, e.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("sendemail: %w: %s", err, detail)
		}
		return fmt.Errorf("sendemail: %w", err)
	}
	return nil
}

package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"slate/internal/config"
)

func TestNewServiceReturnsNoopWhenUnconfigured(t *testing.T) {
	cfgVal := config.Default()
	svc := NewService(&cfgVal)
	if _, ok := svc.(noopService); !ok {
		t.Fatalf("expected noop service, got %T", svc)
	}
	if err := svc.RenderCompleted(context.Background(), "sh010", time.Minute); err != nil {
		t.Fatalf("noop service returned error: %v", err)
	}
}

func TestNtfySendsHeadersAndBody(t *testing.T) {
	var gotTitle, gotTags, gotPriority, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		gotTags = r.Header.Get("Tags")
		gotPriority = r.Header.Get("Priority")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	cfgVal := config.Default()
	cfgVal.Notifications.NtfyTopic = server.URL
	svc := NewService(&cfgVal)

	if err := svc.RenderCompleted(context.Background(), "sh010 comp", 90*time.Second); err != nil {
		t.Fatalf("RenderCompleted: %v", err)
	}
	if gotTitle != "Slate - Render Complete" {
		t.Fatalf("title = %q", gotTitle)
	}
	if !strings.Contains(gotTags, "completed") {
		t.Fatalf("tags = %q", gotTags)
	}
	if gotPriority != "high" {
		t.Fatalf("priority = %q", gotPriority)
	}
	if !strings.Contains(gotBody, "sh010 comp") || !strings.Contains(gotBody, "1m30s") {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestNtfyReportsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic over quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfgVal := config.Default()
	cfgVal.Notifications.NtfyTopic = server.URL
	svc := NewService(&cfgVal)

	err := svc.Test(context.Background())
	if err == nil {
		t.Fatal("expected error for HTTP failure")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error missing status code: %v", err)
	}
}

func TestEmailBuildsSendemailArgs(t *testing.T) {
	var capturedName string
	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedName = name
		capturedArgs = append([]string(nil), args...)
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { commandContext = original })

	svc := &emailService{
		binary: "sendemail",
		from:   "slate@example.com",
		to:     "renders@example.com",
		server: "smtp.example.com:587",
	}
	if err := svc.RenderFailed(context.Background(), "sh010", errors.New("disk full")); err != nil {
		t.Fatalf("RenderFailed: %v", err)
	}

	if capturedName != "sendemail" {
		t.Fatalf("binary = %q", capturedName)
	}
	joined := strings.Join(capturedArgs, " ")
	for _, want := range []string{
		"-f slate@example.com",
		"-t renders@example.com",
		"-s smtp.example.com:587",
		"-u Slate - Render Failed",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
	if !strings.Contains(joined, "disk full") {
		t.Errorf("message missing cause: %s", joined)
	}
}

func TestMultiServiceFansOut(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	original := commandContext
	var emailSent bool
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		emailSent = true
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { commandContext = original })

	cfgVal := config.Default()
	cfgVal.Notifications.NtfyTopic = server.URL
	cfgVal.Notifications.EmailFrom = "slate@example.com"
	cfgVal.Notifications.EmailTo = "renders@example.com"
	cfgVal.Notifications.SMTPServer = "smtp.example.com:587"

	svc := NewService(&cfgVal)
	if _, ok := svc.(multiService); !ok {
		t.Fatalf("expected multi service, got %T", svc)
	}
	if err := svc.RenderStarted(context.Background(), "sh010"); err != nil {
		t.Fatalf("RenderStarted: %v", err)
	}
	if calls != 1 {
		t.Fatalf("ntfy calls = %d", calls)
	}
	if !emailSent {
		t.Fatal("email backend not invoked")
	}
}

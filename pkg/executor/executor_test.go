package executor

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunStdout(t *testing.T) {
	requireSh(t)

	out, err := New().Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "cat"},
		Stdin: strings.NewReader("riff-bytes"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(out) != "riff-bytes" {
		t.Errorf("Run() = %q, want %q", out, "riff-bytes")
	}
}

func TestRunIncludesStderr(t *testing.T) {
	requireSh(t)

	_, err := New().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo bad input >&2; exit 3"},
	})
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if !strings.Contains(err.Error(), "bad input") {
		t.Errorf("error %q does not include stderr", err)
	}
}

func TestRunCancelled(t *testing.T) {
	requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	if err == nil {
		t.Fatal("Run() expected error for cancelled context")
	}
}

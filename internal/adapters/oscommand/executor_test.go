package oscommand

import (
	"runtime"
	"strings"
	"testing"
)

func TestOSCommandExecutor_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX utilities")
	}
	exec := NewOSCommandExecutor()

	t.Run("captures stdout", func(t *testing.T) {
		stdout, _, err := exec.Execute("echo", "hello")
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if strings.TrimSpace(stdout) != "hello" {
			t.Errorf("Execute() stdout = %q, want %q", stdout, "hello")
		}
	})

	t.Run("missing program errors", func(t *testing.T) {
		_, _, err := exec.Execute("dosalias-definitely-not-a-program")
		if err == nil {
			t.Fatal("Execute() expected error for missing program")
		}
	})
}

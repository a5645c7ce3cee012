package main

import (
	"os"
	"path/filepath"
	"testing"

	"phonetrace/platform/apperr"
)

func TestRun_UsageErrorWithoutArguments(t *testing.T) {
	t.Setenv("OPENCAGE_API_KEY", "")
	if code := run(nil); code != apperr.ExitUsage {
		t.Fatalf("expected exit %d, got %d", apperr.ExitUsage, code)
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENCAGE_API_KEY", "")
	if code := run([]string{"+254712345678"}); code != apperr.ExitUsage {
		t.Fatalf("expected exit %d, got %d", apperr.ExitUsage, code)
	}
}

func TestRun_InvalidNumberWritesNoFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PHONETRACE_OUTPUT_DIR", dir)

	code := run([]string{"notanumber", "-q", "--no-color", "-k", "test-key"})
	if code != apperr.ExitFailure {
		t.Fatalf("expected exit %d, got %d", apperr.ExitFailure, code)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "phone_map_*.html"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("no map file may be written for invalid input, found %v", matches)
	}
}

func TestRun_Help(t *testing.T) {
	if code := run([]string{"-h"}); code != apperr.ExitOK {
		t.Fatalf("expected exit %d for -h, got %d", apperr.ExitOK, code)
	}
}

func TestExitCode_PlainError(t *testing.T) {
	if code := exitCode(os.ErrPermission); code != apperr.ExitFailure {
		t.Fatalf("expected generic failure exit, got %d", code)
	}
}

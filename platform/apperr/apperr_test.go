package apperr

import (
	"errors"
	"testing"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindUsage, ExitUsage},
		{KindInvalidNumber, ExitFailure},
		{KindMapWrite, ExitFailure},
		{KindInternal, ExitFailure},
		{KindAuth, ExitOK},
		{KindQuota, ExitOK},
		{KindNoLocation, ExitOK},
		{KindNetwork, ExitOK},
	}

	for _, tc := range cases {
		if got := New(tc.kind, "x").ExitCode(); got != tc.want {
			t.Fatalf("kind %d: expected exit code %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestRecoverable(t *testing.T) {
	for _, kind := range []Kind{KindAuth, KindQuota, KindNoLocation, KindNetwork} {
		if !New(kind, "x").Recoverable() {
			t.Fatalf("kind %d should be recoverable", kind)
		}
	}
	for _, kind := range []Kind{KindUsage, KindInvalidNumber, KindMapWrite, KindInternal} {
		if New(kind, "x").Recoverable() {
			t.Fatalf("kind %d should not be recoverable", kind)
		}
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(KindNetwork, "request failed", inner).WithOp("geocode")

	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped error to match inner via errors.Is")
	}
	if err.Error() != "geocode: request failed" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
	if GetKind(err) != KindNetwork {
		t.Fatalf("expected KindNetwork, got %d", GetKind(err))
	}
	if GetKind(inner) != KindUnknown {
		t.Fatalf("expected KindUnknown for plain error, got %d", GetKind(inner))
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeInvalidArgument, "invalid theme mode: sepia", nil)
	wrapped := fmt.Errorf("set mode: %w", base)

	if got := CodeOf(wrapped); got != CodeInvalidArgument {
		t.Fatalf("expected %s, got %s", CodeInvalidArgument, got)
	}
	if !IsCode(wrapped, CodeInvalidArgument) {
		t.Fatalf("expected IsCode to match wrapped error")
	}
	if IsCode(wrapped, CodeStorage) {
		t.Fatalf("did not expect storage code to match")
	}
}

func TestCodeOfPlainErrorIsUnknown(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != CodeUnknown {
		t.Fatalf("expected unknown code, got %s", got)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("expected unknown code for nil, got %s", got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	inner := errors.New("disk full")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{name: "message wins", err: New(CodeStorage, "persist locale", inner), want: "persist locale"},
		{name: "wrapped error", err: New(CodeStorage, "", inner), want: "disk full"},
		{name: "code only", err: New(CodeMissingTranslationKey, "", nil), want: "missing_translation_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
	if !errors.Is(New(CodeStorage, "persist", inner), inner) {
		t.Fatalf("expected Unwrap to expose the wrapped error")
	}
}

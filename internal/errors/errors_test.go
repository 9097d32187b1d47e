package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestOpError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OpError
		want string
	}{
		{
			name: "message only",
			err:  &OpError{Code: CodeValidation, Message: "invalid port"},
			want: "invalid port",
		},
		{
			name: "with domain",
			err:  &OpError{Code: CodeIssuance, Message: "issuance failed", Domain: "example.com"},
			want: "example.com: issuance failed",
		},
		{
			name: "with underlying error",
			err:  &OpError{Code: CodeReload, Message: "reload failed", Err: fmt.Errorf("exit status 1")},
			want: "reload failed: exit status 1",
		},
		{
			name: "with domain and underlying error",
			err:  &OpError{Code: CodeIssuance, Message: "issuance failed", Domain: "example.com", Err: fmt.Errorf("rate limited")},
			want: "example.com: issuance failed: rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpError_Is(t *testing.T) {
	t.Run("matches sentinel by code", func(t *testing.T) {
		err := InvalidDomain("bad..com")
		if !Is(err, ErrInvalidDomain) {
			t.Error("expected InvalidDomain to match ErrInvalidDomain")
		}
	})

	t.Run("does not match different code", func(t *testing.T) {
		err := Unreachable(3000)
		if Is(err, ErrIssuanceFailed) {
			t.Error("PORT_UNREACHABLE should not match ISSUANCE")
		}
	})

	t.Run("does not match plain errors", func(t *testing.T) {
		if Is(fmt.Errorf("plain"), ErrParse) {
			t.Error("plain error should not match OpError sentinel")
		}
	})
}

func TestOpError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("certbot exit status 1")
	err := Issuance("example.com", inner)

	var opErr *OpError
	if !As(err, &opErr) {
		t.Fatal("expected error to be an *OpError")
	}
	if opErr.Unwrap() != inner {
		t.Error("Unwrap did not return the wrapped error")
	}
	if opErr.Domain != "example.com" {
		t.Errorf("expected domain example.com, got %s", opErr.Domain)
	}
}

func TestConstructors(t *testing.T) {
	t.Run("InvalidPort includes value", func(t *testing.T) {
		err := InvalidPort(65536)
		if !strings.Contains(err.Error(), "65536") {
			t.Errorf("error should mention the port value: %v", err)
		}
		if !Is(err, ErrInvalidPort) {
			t.Error("expected VALIDATION code")
		}
	})

	t.Run("ToolMissing includes tool name", func(t *testing.T) {
		err := ToolMissing("certbot")
		if !strings.Contains(err.Error(), "certbot") {
			t.Errorf("error should mention the tool: %v", err)
		}
		if !Is(err, ErrToolMissing) {
			t.Error("expected TOOL_MISSING code")
		}
	})

	t.Run("WrapDomain carries all context", func(t *testing.T) {
		inner := fmt.Errorf("permission denied")
		err := WrapDomain(CodeConfigWrite, "example.com", "cannot write site config", inner)
		var opErr *OpError
		if !As(err, &opErr) {
			t.Fatal("expected *OpError")
		}
		if opErr.Code != CodeConfigWrite || opErr.Domain != "example.com" {
			t.Errorf("unexpected fields: %+v", opErr)
		}
	})
}

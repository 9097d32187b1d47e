package validate

import (
	"testing"

	"github.com/dibbed/sslauto/internal/errors"
)

func TestDomain(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"Example.COM", "example.com"},
		{"sub.example.com", "sub.example.com"},
		{"a-b.example.co.uk", "a-b.example.co.uk"},
		{"xn--bcher-kva.example", "xn--bcher-kva.example"},
		{"123.example.org", "123.example.org"},
		{"  example.com  ", "example.com"},
	}
	for _, tt := range valid {
		t.Run("valid/"+tt.in, func(t *testing.T) {
			got, err := Domain(tt.in)
			if err != nil {
				t.Fatalf("Domain(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	invalid := []string{
		"",
		"   ",
		"-bad.com",
		"bad-.com",
		"bad..com",
		".bad.com",
		"bad.com.",
		"bad .com",
		"bad_domain.com",
		"localhost",
		"example",
		"example.c",
		"example.123",
		"exa mple.com",
		"http://example.com",
	}
	for _, in := range invalid {
		t.Run("invalid/"+in, func(t *testing.T) {
			_, err := Domain(in)
			if err == nil {
				t.Fatalf("Domain(%q) expected error, got none", in)
			}
			if !errors.Is(err, errors.ErrInvalidDomain) {
				t.Errorf("Domain(%q) error is not InvalidDomain: %v", in, err)
			}
		})
	}
}

func TestDomainLabelLength(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}

	if _, err := Domain(string(long) + ".com"); err == nil {
		t.Error("64-character label should be rejected")
	}
	if _, err := Domain(string(long[:63]) + ".com"); err != nil {
		t.Errorf("63-character label should be accepted: %v", err)
	}
}

func TestPort(t *testing.T) {
	for _, port := range []int{1, 80, 443, 3000, 65535} {
		if err := Port(port); err != nil {
			t.Errorf("Port(%d) unexpected error: %v", port, err)
		}
	}

	for _, port := range []int{0, -1, 65536, 100000} {
		err := Port(port)
		if err == nil {
			t.Errorf("Port(%d) expected error, got none", port)
			continue
		}
		if !errors.Is(err, errors.ErrInvalidPort) {
			t.Errorf("Port(%d) error is not InvalidPort: %v", port, err)
		}
	}
}

package ssl

import (
	"errors"
	"strings"
	"testing"

	sslerrors "github.com/dibbed/sslauto/internal/errors"
	"github.com/dibbed/sslauto/internal/executor"
)

func TestCertPaths(t *testing.T) {
	c := NewClient("/var/www/html", &executor.MockExecutor{})
	cert := c.CertPaths("example.com")

	if cert.CertPath != "/etc/letsencrypt/live/example.com/fullchain.pem" {
		t.Errorf("unexpected cert path: %s", cert.CertPath)
	}
	if cert.KeyPath != "/etc/letsencrypt/live/example.com/privkey.pem" {
		t.Errorf("unexpected key path: %s", cert.KeyPath)
	}
	if cert.ChainPath != "/etc/letsencrypt/live/example.com/chain.pem" {
		t.Errorf("unexpected chain path: %s", cert.ChainPath)
	}
}

func TestIssue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		c := NewClient("/var/www/html", mock)

		cert, err := c.Issue("example.com", "admin@example.com")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if cert.Domain != "example.com" {
			t.Errorf("unexpected domain: %s", cert.Domain)
		}

		// mkdir of challenge dir, then certbot certonly
		if len(mock.Calls) != 2 {
			t.Fatalf("expected 2 calls, got %d", len(mock.Calls))
		}
		if mock.Calls[0].Name != "mkdir" {
			t.Errorf("expected challenge dir creation first, got %v", mock.Calls[0])
		}

		certbotArgs := strings.Join(mock.Calls[1].Args, " ")
		for _, want := range []string{
			"certonly",
			"--webroot",
			"-w /var/www/html",
			"-d example.com",
			"--email admin@example.com",
			"--agree-tos",
			"--non-interactive",
		} {
			if !strings.Contains(certbotArgs, want) {
				t.Errorf("certbot args missing %q: %s", want, certbotArgs)
			}
		}
	})

	t.Run("failure carries certbot output", func(t *testing.T) {
		mock := &executor.MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				if name == "certbot" {
					return []byte("Challenge failed for domain example.com"), errors.New("exit status 1")
				}
				return nil, nil
			},
		}
		c := NewClient("/var/www/html", mock)

		_, err := c.Issue("example.com", "admin@example.com")
		if err == nil {
			t.Fatal("expected error")
		}
		if !sslerrors.Is(err, sslerrors.ErrIssuanceFailed) {
			t.Errorf("expected ISSUANCE error, got %v", err)
		}
		if !strings.Contains(err.Error(), "Challenge failed") {
			t.Errorf("error should carry certbot output: %v", err)
		}
	})
}

func TestRenew(t *testing.T) {
	mock := &executor.MockExecutor{}
	c := NewClient("/var/www/html", mock)

	if err := c.Renew("example.com"); err != nil {
		t.Fatalf("Renew failed: %v", err)
	}

	args := strings.Join(mock.Calls[0].Args, " ")
	if !strings.Contains(args, "renew --cert-name example.com") {
		t.Errorf("unexpected renew args: %s", args)
	}
}

func TestList(t *testing.T) {
	t.Run("parses certificate names", func(t *testing.T) {
		mock := &executor.MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				return []byte(`Saving debug log to /var/log/letsencrypt/letsencrypt.log

- - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
Found the following certs:
  Certificate Name: example.com
    Domains: example.com
    Expiry Date: 2027-03-01 12:00:00+00:00 (VALID: 89 days)
  Certificate Name: other.org
    Domains: other.org
- - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
`), nil
			},
		}
		c := NewClient("/var/www/html", mock)

		domains, err := c.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(domains) != 2 || domains[0] != "example.com" || domains[1] != "other.org" {
			t.Errorf("unexpected domains: %v", domains)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		c := NewClient("/var/www/html", mock)

		domains, err := c.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(domains) != 0 {
			t.Errorf("expected no domains, got %v", domains)
		}
	})
}

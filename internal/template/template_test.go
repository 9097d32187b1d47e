package template

import (
	"strings"
	"testing"
)

func baseData() Data {
	return Data{
		Domain:    "example.com",
		Port:      3000,
		HTTPPort:  80,
		HTTPSPort: 443,
		Webroot:   "/var/www/html",
		CertPath:  "/etc/letsencrypt/live/example.com/fullchain.pem",
		KeyPath:   "/etc/letsencrypt/live/example.com/privkey.pem",
		ChainPath: "/etc/letsencrypt/live/example.com/chain.pem",
		Protocols: "TLSv1.2 TLSv1.3",
		Ciphers:   "HIGH:!aNULL:!MD5",
	}
}

func TestRenderHTTP(t *testing.T) {
	content, err := Render(KindHTTP, baseData())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"listen 80;",
		"server_name example.com;",
		"location /.well-known/acme-challenge/",
		"root /var/www/html;",
		"proxy_pass http://127.0.0.1:3000;",
		"proxy_set_header X-Forwarded-Proto $scheme;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("http config missing %q", want)
		}
	}

	if strings.Contains(content, "ssl_certificate") {
		t.Error("http config must not reference certificates")
	}
}

func TestRenderSSLWithRedirect(t *testing.T) {
	data := baseData()
	data.Redirect = true

	content, err := Render(KindSSL, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"listen 443 ssl;",
		"return 301 https://$host$request_uri;",
		"ssl_certificate /etc/letsencrypt/live/example.com/fullchain.pem;",
		"ssl_certificate_key /etc/letsencrypt/live/example.com/privkey.pem;",
		"ssl_trusted_certificate /etc/letsencrypt/live/example.com/chain.pem;",
		"ssl_protocols TLSv1.2 TLSv1.3;",
		"ssl_ciphers HIGH:!aNULL:!MD5;",
		"proxy_pass http://127.0.0.1:3000;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ssl config missing %q", want)
		}
	}
}

func TestRenderSSLWithoutRedirect(t *testing.T) {
	data := baseData()
	data.Redirect = false

	content, err := Render(KindSSL, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(content, "return 301") {
		t.Error("no-redirect config must not contain a redirect")
	}

	// Both the HTTP and HTTPS blocks proxy to the upstream
	if n := strings.Count(content, "proxy_pass http://127.0.0.1:3000;"); n != 2 {
		t.Errorf("expected 2 proxy_pass directives, got %d", n)
	}
}

func TestRenderCustomPorts(t *testing.T) {
	data := baseData()
	data.HTTPPort = 8080
	data.HTTPSPort = 8443

	content, err := Render(KindSSL, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(content, "listen 8080;") {
		t.Error("custom HTTP port not applied")
	}
	if !strings.Contains(content, "listen [::]:8443 ssl;") {
		t.Error("custom HTTPS port not applied")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(Kind("tcp"), baseData())
	if err == nil {
		t.Error("expected error for unknown template kind")
	}
}

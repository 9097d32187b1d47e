package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed nginx/*.tmpl
var nginxTemplates embed.FS

// Kind selects which site configuration variant to render.
type Kind string

const (
	// KindHTTP is the initial HTTP-only configuration: it serves the
	// ACME challenge directory and proxies everything else, so the
	// issuance client's HTTP-01 challenge can succeed before any
	// certificate exists.
	KindHTTP Kind = "http"

	// KindSSL is the final configuration: an HTTPS server block
	// referencing the issued certificate, with the HTTP block either
	// redirecting or proxying depending on Data.Redirect.
	KindSSL Kind = "ssl"
)

// Data carries everything the nginx templates reference.
type Data struct {
	Domain    string
	Port      int  // upstream application port
	HTTPPort  int  // listen port for plain HTTP
	HTTPSPort int  // listen port for TLS
	Redirect  bool // redirect HTTP to HTTPS in the final config

	Webroot string // ACME challenge webroot

	CertPath  string
	KeyPath   string
	ChainPath string

	Protocols string // ssl_protocols directive value
	Ciphers   string // ssl_ciphers directive value
}

// Render produces the nginx site configuration of the given kind.
func Render(kind Kind, data Data) (string, error) {
	name := fmt.Sprintf("nginx/%s.tmpl", kind)

	content, err := nginxTemplates.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template not found: %s", kind)
	}

	tmpl, err := template.New(string(kind)).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", kind, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", kind, err)
	}
	return buf.String(), nil
}

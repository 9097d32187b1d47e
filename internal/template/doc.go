// Package template renders nginx site configuration files from
// embedded Go templates.
//
// Two variants exist, matching the two phases of provisioning:
//
//	nginx/http.tmpl  HTTP-only config serving the ACME challenge
//	                 directory and proxying to the upstream port
//	nginx/ssl.tmpl   final config with an HTTPS server block and an
//	                 HTTP block that either redirects or proxies
//
// Templates are embedded in the binary using go:embed.
//
// # Rendering
//
//	content, err := template.Render(template.KindSSL, template.Data{
//	    Domain:    "example.com",
//	    Port:      3000,
//	    HTTPPort:  80,
//	    HTTPSPort: 443,
//	    Redirect:  true,
//	    CertPath:  "/etc/letsencrypt/live/example.com/fullchain.pem",
//	    KeyPath:   "/etc/letsencrypt/live/example.com/privkey.pem",
//	    ChainPath: "/etc/letsencrypt/live/example.com/chain.pem",
//	    Protocols: "TLSv1.2 TLSv1.3",
//	    Ciphers:   "HIGH:!aNULL:!MD5",
//	})
package template

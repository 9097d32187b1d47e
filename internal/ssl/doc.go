// Package ssl drives the two external certificate tools: certbot for
// issuance and lifecycle, and openssl for expiry inspection.
//
// Certificate bytes are never touched directly. Certbot owns the
// storage under /etc/letsencrypt/live/<domain>/, and this package only
// computes the well-known paths inside it and parses the tools'
// textual output.
package ssl

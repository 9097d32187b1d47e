// Package validate checks user-supplied domain names and ports before
// any side effect is performed. Both checks are pure.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dibbed/sslauto/internal/errors"
)

var v = validator.New()

// Domain validates hostname syntax and returns the lower-cased domain.
//
// Accepted names are dot-separated labels of 1-63 alphanumeric or
// hyphen characters with no leading or trailing hyphen, ending in an
// alphabetic top-level label of at least two characters. Single-label
// names are rejected: a public certificate needs a registrable domain.
func Domain(name string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(name))
	if domain == "" {
		return "", errors.InvalidDomain(name)
	}

	if err := v.Var(domain, "fqdn"); err != nil {
		return "", errors.InvalidDomain(name)
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return "", errors.InvalidDomain(name)
	}
	for _, label := range labels {
		if !validLabel(label) {
			return "", errors.InvalidDomain(name)
		}
	}
	if !alphabetic(labels[len(labels)-1]) {
		return "", errors.InvalidDomain(name)
	}

	return domain, nil
}

// Port validates that port lies in the TCP port range.
func Port(port int) error {
	if port < 1 || port > 65535 {
		return errors.InvalidPort(port)
	}
	return nil
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// alphabetic reports whether the top-level label is letters only and
// at least two characters, ruling out numeric TLDs like in raw IPs.
func alphabetic(label string) bool {
	if len(label) < 2 {
		return false
	}
	for i := 0; i < len(label); i++ {
		if label[i] < 'a' || label[i] > 'z' {
			return false
		}
	}
	return true
}

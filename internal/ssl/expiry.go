package ssl

import (
	"fmt"
	"strings"
	"time"

	"github.com/dibbed/sslauto/internal/errors"
)

// enddateLayout matches openssl's notAfter format, e.g.
// "Mar  1 12:00:00 2027 GMT". The _2 token absorbs the space padding
// openssl uses for single-digit days.
const enddateLayout = "Jan _2 15:04:05 2006 MST"

// Expiry returns the not-after instant of the stored certificate for a
// domain, read with `openssl x509 -noout -enddate`.
func (c *Client) Expiry(domain string) (time.Time, error) {
	if _, err := c.exec.LookPath("openssl"); err != nil {
		return time.Time{}, errors.ToolMissing("openssl")
	}

	certPath := c.CertPaths(domain).CertPath
	output, err := c.exec.Execute("openssl", "x509", "-in", certPath, "-noout", "-enddate")
	if err != nil {
		return time.Time{}, errors.WrapDomain(errors.CodeParse, domain,
			fmt.Sprintf("certificate not readable at %s", certPath), err)
	}

	return ParseEnddate(string(output))
}

// ParseEnddate extracts the timestamp from an openssl enddate line of
// the form "notAfter=Mar  1 12:00:00 2027 GMT".
func ParseEnddate(output string) (time.Time, error) {
	line := strings.TrimSpace(output)
	idx := strings.Index(line, "=")
	if idx < 0 {
		return time.Time{}, errors.Parse(fmt.Sprintf("unexpected openssl output: %q", line), nil)
	}

	value := strings.TrimSpace(line[idx+1:])
	notAfter, err := time.Parse(enddateLayout, value)
	if err != nil {
		return time.Time{}, errors.Parse(fmt.Sprintf("cannot parse certificate expiry %q", value), err)
	}
	return notAfter, nil
}

// Package probe tests whether the upstream application is actually
// listening before provisioning starts, so a certificate is never
// issued for a domain whose backend is down.
package probe

import (
	"net"
	"strconv"
	"time"

	"github.com/dibbed/sslauto/internal/logger"
)

// Reachable attempts a TCP connection to 127.0.0.1:port and reports
// whether it succeeded within timeout. Connection refused and timeout
// both map to false; this function never returns an error.
func Reachable(port int, timeout time.Duration) bool {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		logger.Debug("port probe %s failed: %v", addr, err)
		return false
	}
	_ = conn.Close()
	return true
}

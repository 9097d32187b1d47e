package workflow

import (
	"time"

	"github.com/dibbed/sslauto/internal/ssl"
)

// MockSiteWriter is a test double for SiteWriter with call tracking.
type MockSiteWriter struct {
	WriteSiteFunc  func(domain, content string) error
	RemoveSiteFunc func(domain string) error
	TestFunc       func() error
	ReloadFunc     func() error

	WriteCalls  []WriteCall
	RemoveCalls []string
	TestCalls   int
	ReloadCalls int

	written map[string]string
}

// WriteCall records one WriteSite invocation.
type WriteCall struct {
	Domain  string
	Content string
}

// NewMockSiteWriter creates a MockSiteWriter that tracks written sites
// in memory so Exists reflects Write/Remove history.
func NewMockSiteWriter() *MockSiteWriter {
	return &MockSiteWriter{written: make(map[string]string)}
}

func (m *MockSiteWriter) WriteSite(domain, content string) error {
	m.WriteCalls = append(m.WriteCalls, WriteCall{Domain: domain, Content: content})
	if m.WriteSiteFunc != nil {
		if err := m.WriteSiteFunc(domain, content); err != nil {
			return err
		}
	}
	m.written[domain] = content
	return nil
}

func (m *MockSiteWriter) RemoveSite(domain string) error {
	m.RemoveCalls = append(m.RemoveCalls, domain)
	if m.RemoveSiteFunc != nil {
		if err := m.RemoveSiteFunc(domain); err != nil {
			return err
		}
	}
	delete(m.written, domain)
	return nil
}

func (m *MockSiteWriter) Exists(domain string) bool {
	_, ok := m.written[domain]
	return ok
}

// Content returns what is currently written for a domain.
func (m *MockSiteWriter) Content(domain string) string {
	return m.written[domain]
}

func (m *MockSiteWriter) ConfPath(domain string) string {
	return "/etc/nginx/sites-available/" + domain + ".conf"
}

func (m *MockSiteWriter) Test() error {
	m.TestCalls++
	if m.TestFunc != nil {
		return m.TestFunc()
	}
	return nil
}

func (m *MockSiteWriter) Reload() error {
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

// MockCertClient is a test double for CertClient.
type MockCertClient struct {
	IssueFunc    func(domain, email string) (*ssl.Cert, error)
	RenewFunc    func(domain string) error
	RenewAllFunc func() error
	ExpiryFunc   func(domain string) (time.Time, error)

	IssueCalls    []IssueCall
	RenewCalls    []string
	RenewAllCalls int
	ExpiryCalls   []string
}

// IssueCall records one Issue invocation.
type IssueCall struct {
	Domain string
	Email  string
}

func (m *MockCertClient) Issue(domain, email string) (*ssl.Cert, error) {
	m.IssueCalls = append(m.IssueCalls, IssueCall{Domain: domain, Email: email})
	if m.IssueFunc != nil {
		return m.IssueFunc(domain, email)
	}
	return m.CertPaths(domain), nil
}

func (m *MockCertClient) Renew(domain string) error {
	m.RenewCalls = append(m.RenewCalls, domain)
	if m.RenewFunc != nil {
		return m.RenewFunc(domain)
	}
	return nil
}

func (m *MockCertClient) RenewAll() error {
	m.RenewAllCalls++
	if m.RenewAllFunc != nil {
		return m.RenewAllFunc()
	}
	return nil
}

func (m *MockCertClient) CertPaths(domain string) *ssl.Cert {
	return &ssl.Cert{
		Domain:    domain,
		CertPath:  "/etc/letsencrypt/live/" + domain + "/fullchain.pem",
		KeyPath:   "/etc/letsencrypt/live/" + domain + "/privkey.pem",
		ChainPath: "/etc/letsencrypt/live/" + domain + "/chain.pem",
	}
}

func (m *MockCertClient) Expiry(domain string) (time.Time, error) {
	m.ExpiryCalls = append(m.ExpiryCalls, domain)
	if m.ExpiryFunc != nil {
		return m.ExpiryFunc(domain)
	}
	return time.Now().Add(90 * 24 * time.Hour), nil
}

// MockToolChecker is a test double for ToolChecker.
type MockToolChecker struct {
	Missing  map[string]bool // tools that stay missing after install
	Warnings map[string]string
	Calls    []string
}

func (m *MockToolChecker) EnsureInstalled(tool string) (bool, string) {
	m.Calls = append(m.Calls, tool)
	return !m.Missing[tool], m.Warnings[tool]
}

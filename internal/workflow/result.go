package workflow

import "time"

// Result is returned by every operation. It always carries enough
// detail to decide success or failure without inspecting errors.
type Result struct {
	Success  bool     `json:"success"`
	Domain   string   `json:"domain"`
	ConfPath string   `json:"conf_path,omitempty"`
	Message  string   `json:"message,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// CheckResult extends Result with the certificate expiry fields.
type CheckResult struct {
	Result
	NotAfter time.Time `json:"not_after,omitempty"`
	IsActive bool      `json:"is_active"`
}

func failure(domain string, err error) Result {
	return Result{
		Success: false,
		Domain:  domain,
		Error:   err.Error(),
	}
}

func failureWarn(domain string, err error, warnings []string) Result {
	r := failure(domain, err)
	r.Warnings = warnings
	return r
}

// Package executor wraps subprocess invocation behind a small
// interface so every external tool call in the codebase can be mocked
// in tests. It also provides the privilege-escalation prefix used for
// commands that touch system directories.
package executor

import "os/exec"

// CommandExecutor is the boundary to external programs.
type CommandExecutor interface {
	// Execute runs a command and returns its combined output.
	Execute(name string, args ...string) ([]byte, error)

	// LookPath searches PATH for an executable.
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec.
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor.
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined stdout/stderr.
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// LookPath searches for an executable in PATH.
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Sudo wraps an executor so every Execute call is prefixed with a
// privilege-escalation command. An empty command disables wrapping,
// which is what tests and root shells use.
type Sudo struct {
	Command string
	Exec    CommandExecutor
}

// NewSudo creates a sudo-prefixed executor around inner.
func NewSudo(command string, inner CommandExecutor) *Sudo {
	return &Sudo{Command: command, Exec: inner}
}

// Execute runs the command under the configured escalation prefix.
func (s *Sudo) Execute(name string, args ...string) ([]byte, error) {
	if s.Command == "" {
		return s.Exec.Execute(name, args...)
	}
	return s.Exec.Execute(s.Command, append([]string{name}, args...)...)
}

// LookPath delegates to the inner executor; path lookup needs no
// privileges.
func (s *Sudo) LookPath(file string) (string, error) {
	return s.Exec.LookPath(file)
}

// MockExecutor is a test double recording every call.
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall records one Execute invocation.
type CommandCall struct {
	Name string
	Args []string
}

// Execute records the call and delegates to ExecuteFunc when set.
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// LookPath delegates to LookPathFunc when set, defaulting to found.
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dibbed/sslauto/internal/config"
)

func seedRegistry(t *testing.T) *config.Registry {
	t.Helper()
	registry := config.NewRegistry("")
	registry.Put(&config.Site{
		Domain:    "beta.example.com",
		Port:      4000,
		Redirect:  false,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	registry.Put(&config.Site{
		Domain:    "alpha.example.com",
		Port:      3000,
		Redirect:  true,
		CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	return registry
}

func TestRunList(t *testing.T) {
	out := captureOutput(t)
	SetDeps(NewMockDeps().WithRegistry(seedRegistry(t)).Build())
	t.Cleanup(ResetDeps)

	err := runList(listCmd, nil)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "DOMAIN")
	assert.Contains(t, got, "alpha.example.com")
	assert.Contains(t, got, "beta.example.com")
	assert.Contains(t, got, "3000")
	// Sorted: alpha before beta.
	assert.Less(t,
		strings.Index(got, "alpha.example.com"),
		strings.Index(got, "beta.example.com"))
}

func TestRunListEmpty(t *testing.T) {
	out := captureOutput(t)
	SetDeps(NewMockDeps().Build())
	t.Cleanup(ResetDeps)

	err := runList(listCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No domains configured")
}

func TestRunListJSON(t *testing.T) {
	out := captureOutput(t)
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })

	SetDeps(NewMockDeps().WithRegistry(seedRegistry(t)).Build())
	t.Cleanup(ResetDeps)

	err := runList(listCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"domain": "alpha.example.com"`)
	assert.Contains(t, out.String(), `"port": 3000`)
}

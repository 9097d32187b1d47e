package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRenew(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		all         bool
		wantErr     bool
		errContains string
		validate    func(t *testing.T, prov *MockProvisioner)
	}{
		{
			name: "renew single domain",
			args: []string{"example.com"},
			validate: func(t *testing.T, prov *MockProvisioner) {
				assert.Equal(t, []string{"example.com"}, prov.RenewCalls)
				assert.Zero(t, prov.RenewAllCalls)
			},
		},
		{
			name: "renew all",
			args: []string{},
			all:  true,
			validate: func(t *testing.T, prov *MockProvisioner) {
				assert.Equal(t, 1, prov.RenewAllCalls)
				assert.Empty(t, prov.RenewCalls)
			},
		},
		{
			name:        "neither domain nor --all",
			args:        []string{},
			wantErr:     true,
			errContains: "either a domain or --all",
		},
		{
			name:        "both domain and --all",
			args:        []string{"example.com"},
			all:         true,
			wantErr:     true,
			errContains: "either a domain or --all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			renewAll = tt.all
			t.Cleanup(func() { renewAll = false })

			prov := &MockProvisioner{}
			SetDeps(NewMockDeps().WithProvisioner(prov).Build())
			t.Cleanup(ResetDeps)

			err := runRenew(renewCmd, tt.args)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, prov)
			}
		})
	}
}

func TestRunRenewRequiresRoot(t *testing.T) {
	captureOutput(t)
	prov := &MockProvisioner{}
	SetDeps(NewMockDeps().WithProvisioner(prov).WithRootAccess(false).Build())
	t.Cleanup(ResetDeps)

	err := runRenew(renewCmd, []string{"example.com"})
	require.Error(t, err)
	assert.Empty(t, prov.RenewCalls)
}

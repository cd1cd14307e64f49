package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid sqlite config",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/data"},
		},
		{
			name:   "valid with explicit chains",
			config: Config{Backend: BackendSQLite, AllowedChains: "AB"},
		},
		{
			name:    "empty backend",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "lowercase chains rejected",
			config:  Config{Backend: BackendSQLite, AllowedChains: "ab"},
			wantErr: ErrChainsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigChains(t *testing.T) {
	assert.Equal(t, DefaultAllowedChains, Config{Backend: BackendSQLite}.Chains())
	assert.Equal(t, "AB", Config{Backend: BackendSQLite, AllowedChains: "AB"}.Chains())
}

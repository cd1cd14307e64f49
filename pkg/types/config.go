package types

import "errors"

// Config holds backend selection and parameters for opening the session
// store.
type Config struct {
	Backend       string `json:"backend" yaml:"backend"`
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	AllowedChains string `json:"allowed_chains" yaml:"allowed_chains"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultAllowedChains is the chain filter applied to selection events when
// the config does not name one.
const DefaultAllowedChains = "ABCDEFGH"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrChainsInvalid  = errors.New("allowed_chains must be uppercase letters")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	for i := 0; i < len(c.AllowedChains); i++ {
		if c.AllowedChains[i] < 'A' || c.AllowedChains[i] > 'Z' {
			return ErrChainsInvalid
		}
	}
	return nil
}

// Chains returns the allowed chain letters, falling back to the default set
// when the config leaves them empty.
func (c Config) Chains() string {
	if c.AllowedChains == "" {
		return DefaultAllowedChains
	}
	return c.AllowedChains
}

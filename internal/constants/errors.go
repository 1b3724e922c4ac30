package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentialsConfigured = errors.New("no credentials configured, run 'r1 login' or set R1_CLIENT_ID, R1_CLIENT_SECRET, and R1_TENANT_ID")
	ErrNotLoggedIn             = errors.New("not logged in, run 'r1 login' first")
	ErrInvalidJWTFormat        = errors.New("invalid JWT format")
	ErrNoExpirationClaim       = errors.New("no expiration claim found")
	ErrUnknownOutputFormat     = errors.New("unknown output format, expected table, json, or yaml")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
)

// Required argument errors.
var (
	ErrVenueIDRequired      = errors.New("venue ID is required")
	ErrSerialRequired       = errors.New("access point serial number is required")
	ErrSwitchIDRequired     = errors.New("switch ID is required")
	ErrNetworkIDRequired    = errors.New("network ID is required")
	ErrPoolIDRequired       = errors.New("VLAN pool ID is required")
	ErrServiceIDRequired    = errors.New("DPSK service ID is required")
	ErrGroupIDRequired      = errors.New("identity group ID is required")
	ErrPassphraseIDRequired = errors.New("passphrase ID is required")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)

package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations such as CSV
	// import/export.
	ExtendedHTTPTimeout = 120 * time.Second
)

// Token lifecycle.
const (
	// TokenExpirySafetyMargin is subtracted from the server-declared token
	// lifetime. A token within this margin of expiry is treated as expired
	// so it cannot lapse mid-request.
	TokenExpirySafetyMargin = 5 * time.Minute

	// DefaultTokenLifetime is assumed when the token response omits
	// expires_in.
	DefaultTokenLifetime = 3600 * time.Second
)

// Retry limits. Retries are off by default; these bound the opt-in behavior.
const (
	// DefaultRetryMax is the retry count when retries are enabled without
	// an explicit limit.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the initial wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit bounds concurrent API calls in fan-out
	// operations such as the inventory collector.
	DefaultConcurrencyLimit = 4
)

// Query defaults.
const (
	// DefaultPageSize is the page size the query endpoints assume.
	DefaultPageSize = 100

	// MaxPageSize is the largest page the cloud will return.
	MaxPageSize = 1000
)

// Content types.
const (
	// ContentTypeJSON is the JSON media type.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the media type of the OAuth2 token request body.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeCSV is the media type of passphrase/identity CSV payloads.
	ContentTypeCSV = "text/csv"
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// UserAgent identifies this client to the cloud.
const UserAgent = "ruckusone-go"

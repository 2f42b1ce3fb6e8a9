package constants

import "time"

// API endpoint and authentication.
const (
	// DefaultBaseURL is the pentest.ws API root.
	DefaultBaseURL = "https://pentest.ws/api/v1"

	// APIKeyEnvVar holds the API key when none is configured explicitly.
	APIKeyEnvVar = "PENTEST_WS_API_KEY"

	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "X-API-KEY"

	// DefaultUserAgent identifies the client.
	DefaultUserAgent = "pws-api-wrapper/1.0"

	// ContentTypeJSON is sent on every request with a body.
	ContentTypeJSON = "application/json"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP timeouts and retries.
const (
	// DefaultHTTPTimeout bounds a single request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin is the minimum backoff when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff when retries are enabled.
	DefaultRetryWaitMax = 10 * time.Second
)

// Event publishing.
const (
	// DefaultSubjectPrefix prefixes every published change event subject.
	DefaultSubjectPrefix = "pws"

	// EventPublishTimeout bounds flushing events to the broker.
	EventPublishTimeout = 5 * time.Second
)

// Output formats.
const (
	// FormatTable renders rows with tablewriter.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// StringTruncationLimit is the number of characters shown of a masked key.
	StringTruncationLimit = 4
)

package databricks

import "time"

const (
	// DefaultEndpoint is the default Databricks serving endpoint
	DefaultEndpoint = "databricks-claude-sonnet-4"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// servingPathPrefix is where Databricks exposes the OpenAI-compatible API
	servingPathPrefix = "/serving-endpoints"
)

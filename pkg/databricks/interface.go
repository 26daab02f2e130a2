package databricks

import "context"

// IDatabricks defines the interface for the Databricks serving-endpoint client.
// Implementations are safe for concurrent use.
type IDatabricks interface {
	// GenerateContent sends a chat completion request to the serving endpoint
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the serving endpoint being used
	Model() string
}

// New creates a new Databricks client with the given configuration
func New(cfg Config) (IDatabricks, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDatabricksImpl(cfg), nil
}

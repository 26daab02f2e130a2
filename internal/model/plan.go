package model

// Plan is a snapshot of a user's pregnancy plan document.
type Plan struct {
	Content     string `json:"content"`
	LastUpdated string `json:"last_updated"` // ISO-8601, empty if never written
}

// PlanMetadata is derived from the filesystem on every call, never cached.
type PlanMetadata struct {
	LastUpdated string `json:"last_updated"` // ISO-8601, empty if no document
	FileSize    int64  `json:"file_size"`
	PlanPath    string `json:"plan_path"`
}

package model

// Scope identifies the user a request acts on behalf of. It is threaded
// explicitly through the gateway and every tool call; there is no ambient
// "current user" state anywhere in the process.
type Scope struct {
	UserID   string
	Username string
}

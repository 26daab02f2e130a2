package conversation

// ProcessInput is one inbound user turn.
type ProcessInput struct {
	Content string
}

// UpdatePlanInput is a full plan overwrite.
type UpdatePlanInput struct {
	Content string
}

// Chunk is one streamed reply fragment. Err is set on the final chunk of a
// failed turn; Content carries the user-visible error text in that case too.
type Chunk struct {
	Content string
	Err     error
}

package agent

// ChunkKind classifies a streamed response fragment.
type ChunkKind int

const (
	// ChunkThinking is an intermediate worker trace line
	ChunkThinking ChunkKind = iota
	// ChunkContent is a fragment of the final reply
	ChunkContent
	// ChunkDone terminates a successful stream
	ChunkDone
	// ChunkStopped terminates a stream cancelled by the user
	ChunkStopped
	// ChunkError terminates a failed stream; Text carries a
	// user-presentable message
	ChunkError
)

// Chunk is one fragment of a streaming response. The channel returned
// by Respond delivers zero or more ChunkThinking/ChunkContent chunks
// followed by exactly one terminal chunk, then closes.
type Chunk struct {
	Kind ChunkKind
	Text string
}

// Terminal reports whether the chunk ends the stream.
func (c Chunk) Terminal() bool {
	return c.Kind == ChunkDone || c.Kind == ChunkStopped || c.Kind == ChunkError
}

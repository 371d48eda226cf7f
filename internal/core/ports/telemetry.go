package ports

import "context"

// Telemetry records progress for the stages of a run.
type Telemetry interface {
	// Record starts recording a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded stage.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(msg string)
	// Done completes the vertex, recording err if non-nil.
	Done(err error)
}

package ports

import "context"

// Telemetry records progress of long-running operations: one vertex per
// expanded target or mirror operation.
type Telemetry interface {
	// Record starts a new vertex with the given display name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Log attaches a progress message to the vertex.
	Log(msg string)

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)

	// Cached marks the vertex as served from cache.
	Cached()
}

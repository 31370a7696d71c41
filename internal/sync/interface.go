package sync

import (
	"context"

	"memos-graph-sync/internal/model"
)

// UseCase drives memo synchronization between a Memos server and the local graph.
type UseCase interface {
	// Run imports every memo newer than the stored watermark. Only one run may be in flight.
	Run(ctx context.Context, input RunInput) (RunOutput, error)

	// Push sends a locally edited memo back to the server.
	Push(ctx context.Context, input PushInput) (model.Memo, error)

	// Create posts a new memo to the server.
	Create(ctx context.Context, input CreateInput) (model.Memo, error)

	// Running reports whether a run is in flight.
	Running() bool
}

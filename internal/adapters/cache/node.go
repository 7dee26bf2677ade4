package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/regen/internal/core/ports"
)

const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreOpener, error) {
			return NewOpener(), nil
		},
	})
}

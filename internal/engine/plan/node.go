package plan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/regen/internal/core/domain"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Planner, error) {
			return NewPlanner(domain.HostPlatform{}), nil
		},
	})
}

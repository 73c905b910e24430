package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	IDClassic = "snake"
	IDStrict  = "snake_strict"
)

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(ReversalCollide)
	})
	registry.Register(IDStrict, func() registry.Game {
		return New(ReversalReject)
	})
}

// New creates a variant that has no session until Reset is called.
// Render requests are discarded; the platform draws through Render.
func New(policy ReversalPolicy) *Game {
	return &Game{policy: policy, sink: NopSink{}}
}

// VariantID returns the registry ID for a reversal policy.
func VariantID(p ReversalPolicy) string {
	if p == ReversalReject {
		return IDStrict
	}
	return IDClassic
}

// PolicyFor returns the reversal policy of a variant ID.
func PolicyFor(id string) (ReversalPolicy, error) {
	switch id {
	case IDClassic:
		return ReversalCollide, nil
	case IDStrict:
		return ReversalReject, nil
	default:
		return ReversalCollide, fmt.Errorf("snake: unknown variant %q", id)
	}
}

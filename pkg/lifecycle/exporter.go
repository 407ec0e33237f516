package lifecycle

import (
	"context"

	"github.com/gnames/gndefrag/pkg/optimize"
)

// Exporter defines the interface for saving the outcome of an
// optimization run.
//
// Export must fail without creating any artifact when the outcome is
// nil, which means that optimization did not complete. Implementations
// must not leave partially written artifacts behind.
type Exporter interface {
	// Export saves the outcome.
	Export(ctx context.Context, out *optimize.Outcome) error
}

package lifecycle

import (
	"context"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// Loader defines the interface for reading a catalog of storage objects
// from an external source. Implementations skip malformed records
// instead of failing, and return errors only when the source itself
// cannot be read.
type Loader interface {
	// Load reads the source and creates a new Catalog.
	Load(ctx context.Context) (*catalog.Catalog, error)
}

package iocatalog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/gnames/gndefrag/internal/iofs"
)

// Generate writes a text catalog with n random objects to path.
// Sizes are written with 2 decimals, frequencies with 4 decimals.
func Generate(
	path string,
	n int,
	diskSpace float64,
	tokenCount int,
	r *rand.Rand,
) error {
	err := iofs.WriteAtomic(path, func(w io.Writer) error {
		return writeText(w, n, diskSpace, tokenCount, r)
	})
	if err != nil {
		return GenerateCatalogError(path, err)
	}
	slog.Info("Generated test catalog",
		"path", path, "objects", n,
		"disk_space", diskSpace, "token_count", tokenCount,
	)
	return nil
}

func writeText(
	w io.Writer,
	n int,
	diskSpace float64,
	tokenCount int,
	r *rand.Rand,
) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%g %d\n", diskSpace, tokenCount); err != nil {
		return err
	}
	for i := range n {
		obj := randomObject(r, i+1)
		_, err := fmt.Fprintf(bw, "%d %.2f %.4f\n",
			obj.ID, obj.Size, obj.AccessFrequency)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

package ioexport

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"

	"github.com/gnames/gndefrag/internal/iofs"
	"github.com/gnames/gndefrag/pkg/optimize"
)

// WriteLayout saves ids of objects in the optimized order, one id per
// line. The file is replaced atomically. Without an outcome nothing is
// written.
func WriteLayout(path string, out *optimize.Outcome) error {
	if out == nil {
		return optimize.NotOptimizedError()
	}

	err := iofs.WriteAtomic(path, func(w io.Writer) error {
		return writeIDs(w, out)
	})
	if err != nil {
		return WriteLayoutError(path, err)
	}

	slog.Info("Optimized layout saved",
		"path", path,
		"objects", len(out.Layout),
		"run_id", out.Result.RunID,
	)
	return nil
}

func writeIDs(w io.Writer, out *optimize.Outcome) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, idx := range out.Layout {
		buf = strconv.AppendInt(buf[:0], int64(out.Catalog.Object(idx).ID), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

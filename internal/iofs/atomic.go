package iofs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic writes data produced by fn to path. The data goes to a
// temporary file in the same directory which is renamed to path only
// after fn, flush and sync succeed. On failure the temporary file is
// removed and an existing file at path stays intact.
func WriteAtomic(path string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err = fn(bw); err != nil {
		return cleanup(err)
	}
	if err = bw.Flush(); err != nil {
		return cleanup(err)
	}
	if err = tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return cleanup(err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

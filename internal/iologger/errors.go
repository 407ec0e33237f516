package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
)

// CreateLogFileError means the "file" log destination is unusable.
func CreateLogFileError(path string, err error) error {
	msg := "Log destination <em>%s</em> is not writable"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: open log %s: %w",
			fn.Name(), path, err),
	}
}

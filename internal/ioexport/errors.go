package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
)

func WriteLayoutError(path string, err error) error {
	msg := "Cannot write optimized layout to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteLayoutError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write layout %s: %w",
			fn.Name(), path, err),
	}
}

func WriteReportError(path string, err error) error {
	msg := "Cannot write optimization report to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write report %s: %w",
			fn.Name(), path, err),
	}
}

func UnknownReportFormatError(format string) error {
	msg := "Unknown report format <em>%s</em>, use one of: %s"
	vars := []any{format, "text, json, yaml"}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid argument: unknown report format %q",
			fn.Name(), format),
	}
}

package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
)

// CreateDirError is returned when one of the application directories
// cannot be made.
func CreateDirError(dir string, err error) error {
	msg := "Cannot make directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn.Name(), dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// saved.
func WriteConfigError(path string, err error) error {
	msg := "Cannot save default settings to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: save default config %s: %w",
			fn.Name(), path, err),
	}
}

// ReadConfigError is returned when config.yaml exists but cannot be
// read or decoded.
func ReadConfigError(path string, err error) error {
	msg := "Settings in <em>%s</em> are unreadable"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: load config %s: %w",
			fn.Name(), path, err),
	}
}

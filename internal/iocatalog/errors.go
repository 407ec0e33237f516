package iocatalog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
)

func ReadCatalogError(path string, err error) error {
	msg := "Cannot read catalog from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadCatalogError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read catalog %s: %w",
			fn.Name(), path, err),
	}
}

func SQLiteCatalogError(path string, err error) error {
	msg := "Cannot read <em>storage_objects</em> from SQLite file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SQLiteCatalogError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sqlite catalog %s: %w",
			fn.Name(), path, err),
	}
}

func GenerateCatalogError(path string, err error) error {
	msg := "Cannot generate test catalog <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateCatalogError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot generate catalog %s: %w",
			fn.Name(), path, err),
	}
}

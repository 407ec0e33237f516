package strategy

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
)

func UnknownAlgorithmError(name string) error {
	var names []string
	for _, v := range Algorithms() {
		names = append(names, v.String())
	}
	msg := "Unknown algorithm <em>%s</em>, use one of: %s"
	vars := []any{name, strings.Join(names, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownAlgorithmError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid argument: unknown algorithm %q",
			fn.Name(), name),
	}
}

func CanceledError(alg Algorithm, err error) error {
	msg := "Optimization with <em>%s</em> was canceled"
	vars := []any{alg.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CanceledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s canceled: %w", fn.Name(), alg, err),
	}
}

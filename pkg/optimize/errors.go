package optimize

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/pkg/errcode"
	"github.com/gnames/gndefrag/pkg/strategy"
)

func NotOptimizedError() error {
	msg := "No optimized layout yet, run optimization first"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotOptimizedError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: precondition failed: %w",
			fn.Name(), errors.New("optimization has not completed")),
	}
}

func InvalidLayoutError(alg strategy.Algorithm, n, got int) error {
	msg := "Algorithm <em>%s</em> produced an invalid layout"
	vars := []any{alg.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidLayoutError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: layout of %d elements is not a permutation of %d objects",
			fn.Name(), got, n,
		),
	}
}

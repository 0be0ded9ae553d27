package nglconfigs

import (
	"runtime"

	"github.com/reusee/ngl/cmds"
	"github.com/reusee/ngl/configs"
	"github.com/reusee/ngl/vars"
)

// MaxConns bounds concurrent http connections.
type MaxConns int

var _ configs.Configurable = MaxConns(0)

func (MaxConns) ConfigExpr() string {
	return "max_conns"
}

var maxConnsFlag = cmds.Var[int]("-max-conns", "max concurrent http connections")

func (Module) MaxConns(
	loader configs.Loader,
) MaxConns {
	return MaxConns(vars.FirstNonZero(
		*maxConnsFlag,
		configs.First[int](loader, MaxConns(0).ConfigExpr()),
		64,
	))
}

// MaxRunning bounds programs executing at the same time.
type MaxRunning int

var _ configs.Configurable = MaxRunning(0)

func (MaxRunning) ConfigExpr() string {
	return "max_running"
}

var maxRunningFlag = cmds.Var[int]("-max-running", "max concurrently running programs")

func (Module) MaxRunning(
	loader configs.Loader,
) MaxRunning {
	return MaxRunning(vars.FirstNonZero(
		*maxRunningFlag,
		configs.First[int](loader, MaxRunning(0).ConfigExpr()),
		runtime.NumCPU(),
	))
}

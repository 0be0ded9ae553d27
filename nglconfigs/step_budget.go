package nglconfigs

import (
	"github.com/reusee/ngl/cmds"
	"github.com/reusee/ngl/configs"
	"github.com/reusee/ngl/tapes"
	"github.com/reusee/ngl/vars"
)

// StepBudget is the default number of instructions a run may execute.
type StepBudget int

var _ configs.Configurable = StepBudget(0)

func (StepBudget) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps", "step budget of a run")

func (Module) StepBudget(
	loader configs.Loader,
) StepBudget {
	return StepBudget(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, StepBudget(0).ConfigExpr()),
		tapes.DefaultBudget,
	))
}

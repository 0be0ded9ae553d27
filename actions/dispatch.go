package actions

import (
	"context"
	"fmt"

	"github.com/reusee/ngl/nglconfigs"
)

const (
	ActionRun     = "run"
	ActionReverse = "reverse"
)

type Request struct {
	Action    string
	Code      string
	Input     string
	Plaintext string
	// nil means the configured step budget
	MaxSteps *int
}

type Response struct {
	Action string
	Translation
	Execution
}

// Dispatch routes a request to Execute or Translate by action name. An empty
// action means run.
type Dispatch func(ctx context.Context, req Request) (Response, error)

func (Module) Dispatch(
	translate Translate,
	execute Execute,
	budget nglconfigs.StepBudget,
) Dispatch {
	return func(ctx context.Context, req Request) (ret Response, err error) {
		switch req.Action {

		case ActionRun, "execute", "":
			ret.Action = ActionRun
			steps := int(budget)
			if req.MaxSteps != nil {
				steps = *req.MaxSteps
			}
			ret.Execution, err = execute(ctx, req.Code, req.Input, steps)

		case ActionReverse, "translate":
			ret.Action = ActionReverse
			ret.Translation, err = translate(ctx, req.Plaintext)

		default:
			err = fmt.Errorf("%w: %s", ErrUnrecognizedOperation, req.Action)
		}
		return
	}
}

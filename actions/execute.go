package actions

import (
	"context"

	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/lyrics"
	"github.com/reusee/ngl/tapes"
)

type Execution struct {
	Output    string
	Steps     int
	Truncated bool
}

// Execute runs a lyrics program with input, stopping after budget steps.
type Execute func(ctx context.Context, program string, input string, budget int) (Execution, error)

func (Module) Execute(
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, program string, input string, budget int) (ret Execution, err error) {
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "execute", "error", err)
			}
		}()
		defer catchFault("execute", &err)

		symbols := lyrics.Encode(program)
		res := tapes.Run(symbols, input, budget)
		ret = Execution{
			Output:    res.Output,
			Steps:     res.Steps,
			Truncated: res.Truncated,
		}

		if res.Truncated {
			logger.WarnContext(ctx, "execution truncated",
				"budget", budget,
				"symbols", len(symbols),
			)
		} else {
			logger.DebugContext(ctx, "execute",
				"symbols", len(symbols),
				"steps", res.Steps,
			)
		}
		return
	}
}

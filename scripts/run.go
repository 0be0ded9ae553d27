package scripts

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/ngl/actions"
	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/lyrics"
	"github.com/reusee/ngl/nglconfigs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run executes a starlark script with translate, execute, encode and decode
// predeclared. print writes to out.
type Run func(ctx context.Context, name string, src []byte, out io.Writer) error

func (Module) Run(
	translate actions.Translate,
	execute actions.Execute,
	budget nglconfigs.StepBudget,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, name string, src []byte, out io.Writer) error {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		predeclared := starlark.StringDict{

			"translate": starlark.NewBuiltin("translate", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var text string
				if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
					return nil, err
				}
				ret, err := translate(ctx, text)
				if err != nil {
					return nil, err
				}
				return starlark.String(ret.Phrases), nil
			}),

			"execute": starlark.NewBuiltin("execute", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var program, input string
				maxSteps := int(budget)
				if err := starlark.UnpackArgs(b.Name(), args, kwargs,
					"program", &program,
					"input?", &input,
					"max_steps?", &maxSteps,
				); err != nil {
					return nil, err
				}
				ret, err := execute(ctx, program, input, maxSteps)
				if err != nil {
					return nil, err
				}
				dict := starlark.NewDict(3)
				if err := dict.SetKey(starlark.String("output"), starlark.String(ret.Output)); err != nil {
					return nil, err
				}
				if err := dict.SetKey(starlark.String("steps"), starlark.MakeInt(ret.Steps)); err != nil {
					return nil, err
				}
				if err := dict.SetKey(starlark.String("truncated"), starlark.Bool(ret.Truncated)); err != nil {
					return nil, err
				}
				return dict, nil
			}),

			"encode": starlark.NewBuiltin("encode", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var text string
				if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
					return nil, err
				}
				return starlark.String(lyrics.Encode(text)), nil
			}),

			"decode": starlark.NewBuiltin("decode", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var symbols string
				if err := starlark.UnpackArgs(b.Name(), args, kwargs, "symbols", &symbols); err != nil {
					return nil, err
				}
				return starlark.String(lyrics.Decode(symbols)), nil
			}),
		}

		logger.DebugContext(ctx, "run script", "name", name)
		_, err := starlark.ExecFileOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, name, src, predeclared)
		return err
	}
}

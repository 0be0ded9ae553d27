package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/ngl/actions"
	"github.com/reusee/ngl/cmds"
	"github.com/reusee/ngl/debugs"
	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/lyrics"
	"github.com/reusee/ngl/modes"
	"github.com/reusee/ngl/nglconfigs"
	"github.com/reusee/ngl/scripts"
	"github.com/reusee/ngl/servers"
	"github.com/reusee/ngl/tapes"
)

const exitTruncated = 2

var (
	inputFlag = cmds.Var[string]("-input", "text read by the input instruction")
	tapFlag   = cmds.Switch("-tap", "open a starlark repl on the machine after run")
)

// job is set by the chosen command and runs after all arguments are parsed.
var job any

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		job = func(
			ctx context.Context,
			execute actions.Execute,
			budget nglconfigs.StepBudget,
			tap debugs.Tap,
			logger logs.Logger,
		) error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if *tapFlag {
				m := tapes.New(lyrics.Encode(string(src)), *inputFlag, int(budget))
				res := m.Run()
				fmt.Print(res.Output)
				tap(ctx, path, debugs.MachineGlobals(m))
				return truncated(res.Truncated, logger)
			}

			res, err := execute(ctx, string(src), *inputFlag, int(budget))
			if err != nil {
				return err
			}
			fmt.Print(res.Output)
			return truncated(res.Truncated, logger)
		}
	}).Desc("run a lyrics program file"))

	cmds.Define("translate", cmds.Func(func(text string) {
		job = func(
			ctx context.Context,
			translate actions.Translate,
		) error {
			res, err := translate(ctx, text)
			if err != nil {
				return err
			}
			fmt.Println(res.Phrases)
			return nil
		}
	}).Desc("print the lyrics program that prints text"))

	cmds.Define("symbols", cmds.Func(func(path string) {
		job = func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			fmt.Println(lyrics.Encode(string(src)))
			return nil
		}
	}).Desc("print the symbol program of a lyrics file"))

	cmds.Define("serve", cmds.Func(func() {
		job = func(
			ctx context.Context,
			serve servers.Serve,
		) error {
			return serve(ctx)
		}
	}).Desc("serve the http endpoint"))

	cmds.Define("script", cmds.Func(func(path string) {
		job = func(
			ctx context.Context,
			run scripts.Run,
		) error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return run(ctx, path, src, os.Stdout)
		}
	}).Desc("run a starlark script"))
}

type errTruncated struct{}

func (errTruncated) Error() string {
	return "step budget exhausted"
}

func truncated(yes bool, logger logs.Logger) error {
	if !yes {
		return nil
	}
	logger.Warn("output truncated")
	return errTruncated{}
}

func main() {
	cmds.Execute(os.Args[1:])

	if job == nil {
		cmds.PrintUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() context.Context {
			return ctx
		},
	)

	var err error
	scope.Call(job).Assign(&err)
	if _, ok := err.(errTruncated); ok {
		os.Exit(exitTruncated)
	} else if err != nil {
		scope.Call(func(logger logs.Logger) {
			logger.Error("failed", "error", err)
		})
		os.Exit(1)
	}
}

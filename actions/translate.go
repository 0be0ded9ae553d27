package actions

import (
	"context"

	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/lyrics"
	"github.com/reusee/ngl/plaintexts"
)

type Translation struct {
	Phrases string
}

// Translate renders plaintext as a lyrics program that prints it.
type Translate func(ctx context.Context, plaintext string) (Translation, error)

func (Module) Translate(
	logger logs.Logger,
) Translate {
	return func(ctx context.Context, plaintext string) (ret Translation, err error) {
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "translate", "error", err)
			}
		}()
		defer catchFault("translate", &err)

		program := plaintexts.Encode(plaintext)
		ret.Phrases = lyrics.Decode(program)
		logger.DebugContext(ctx, "translate",
			"chars", len([]rune(plaintext)),
			"symbols", len(program),
		)
		return
	}
}

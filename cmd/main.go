package main

import (
	"context"
	"os"
	"os/signal"

	"example.poc/lin-input-generator/internal/batch"
	"example.poc/lin-input-generator/internal/config"
	"example.poc/lin-input-generator/internal/message"
	"example.poc/lin-input-generator/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to generate LIN input messages")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lin-input-gen",
		Usage: "Write random LIN-like frames as hex test vectors, one per line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   config.OutputFile(),
				Usage:   "destination file, truncated if it exists",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   config.NumMessages(),
				Usage:   "number of messages to write",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed the random source for reproducible output",
			},
		},
		Action: generate,
	}
}

func generate(c *cli.Context) error {
	seed := config.Seed()
	if c.IsSet("seed") {
		seed = lo.ToPtr(c.Uint64("seed"))
	}

	cfg := batch.Config{
		OutputFile:  c.String("output"),
		NumMessages: c.Int("count"),
	}
	res, err := batch.Write(c.Context, cfg, message.NewSource(seed))
	if err != nil {
		return err
	}

	zerolog.Ctx(c.Context).Info().
		RawJSON("result", util.JSONMarshalIgnoreErr(res)).
		Bool("seeded", seed != nil).
		Msg("generation finished")
	return nil
}

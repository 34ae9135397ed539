package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/primetime/cmd/app/commands"
	"github.com/allisson/primetime/internal/app"
	"github.com/allisson/primetime/internal/config"
)

func getNumberCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "factors",
			Usage: "List every positive divisor of a number",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:     "n",
					Required: true,
					Usage:    "Non-negative integer to factor",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.NumberUseCase()
				if err != nil {
					return err
				}

				return commands.RunComputeFactors(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Int64("n"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "is-prime",
			Usage: "Check whether a number is prime",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:     "n",
					Required: true,
					Usage:    "Integer to test",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.NumberUseCase()
				if err != nil {
					return err
				}

				return commands.RunIsPrime(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Int64("n"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "primes",
			Usage: "List the first N prime numbers",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "count",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "How many primes to compute (greater than 1, at most 2000)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.NumberUseCase()
				if err != nil {
					return err
				}

				return commands.RunComputePrimes(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
	}
}

package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/primetime/cmd/app/commands"
	"github.com/allisson/primetime/internal/app"
	"github.com/allisson/primetime/internal/config"
)

func getTextCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "tokenize",
			Usage: "Split text into tokens on a set of delimiter characters",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Text to split",
				},
				&cli.StringFlag{
					Name:    "delimiters",
					Aliases: []string{"d"},
					Value:   " ",
					Usage:   "Characters that separate tokens",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.TokenizerUseCase()
				if err != nil {
					return err
				}

				return commands.RunTokenize(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("text"),
					cmd.String("delimiters"),
					cmd.String("format"),
				)
			},
		},
	}
}

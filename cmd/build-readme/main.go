package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/keshon/server-buddy/internal/commands"
	"github.com/keshon/server-buddy/internal/docs"
	"github.com/keshon/server-buddy/pkg/cmd"
)

func main() {
	app := &cli.App{
		Name:  "build-readme",
		Usage: "render README.md from the registered commands",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "template file, the built-in one when empty"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "README.md", Usage: "output file, - for stdout"},
			&cli.StringFlag{Name: "prefix", Value: "$", EnvVars: []string{"COMMAND_PREFIX"}},
			&cli.StringFlag{Name: "mod-role", Value: "moderator", EnvVars: []string{"SERVER_MOD_ROLE"}},
		},
		Action: func(c *cli.Context) error {
			registry := cmd.NewRegistry()
			if err := commands.Register(registry, commands.Deps{
				ModRole: c.String("mod-role"),
				Prefix:  c.String("prefix"),
			}); err != nil {
				return err
			}

			var tmpl string
			if path := c.String("template"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				tmpl = string(data)
			}

			if c.String("out") == "-" {
				return docs.Render(os.Stdout, tmpl, c.String("prefix"), registry)
			}
			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			defer f.Close()
			if err := docs.Render(f, tmpl, c.String("prefix"), registry); err != nil {
				return err
			}
			fmt.Printf("%s updated with %d commands\n", c.String("out"), len(registry.All()))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package commands

import (
	"context"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
	"github.com/keshon/server-buddy/pkg/util"
)

func dog(deps Deps) Definition {
	return Definition{
		Name:        "dog",
		Description: "Bot fetches and posts a random image of a dog with a fun fact from online.",
		Handler: func(ctx context.Context, req *core.Request, _ *cmd.Invocation) error {
			var image, fact string
			err := util.All(ctx,
				func(ctx context.Context) (err error) {
					image, err = deps.APIs.DogImage(ctx)
					return err
				},
				func(ctx context.Context) (err error) {
					fact, err = deps.APIs.DogFact(ctx)
					return err
				},
			)
			if err != nil {
				return err
			}

			req.ReplyRich(core.RichMessage{
				Title:    "Pup!",
				ImageURL: image,
				Caption:  fact,
				Color:    core.ColorBlue,
			})
			return nil
		},
	}
}

func cat(deps Deps) Definition {
	return Definition{
		Name:        "cat",
		Description: "Bot fetches and posts a random image of a cat from online.",
		Handler: func(ctx context.Context, req *core.Request, _ *cmd.Invocation) error {
			image, err := deps.APIs.CatImage(ctx)
			if err != nil {
				return err
			}
			req.ReplyRich(core.RichMessage{
				Title:    "Kitty!",
				ImageURL: image,
				Color:    core.ColorBlue,
			})
			return nil
		},
	}
}

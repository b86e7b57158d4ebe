package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

func postsCommand() *cli.Command {
	return &cli.Command{
		Name:    "posts",
		Aliases: []string{"post"},
		Usage:   "community posts and comments",
		Subcommands: []*cli.Command{
			{
				Name:  "publish",
				Usage: "publish a post in a community",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "community", Required: true},
					&cli.StringFlag{Name: "header", Required: true},
					&cli.StringFlag{Name: "body", Required: true},
				},
				Action: func(c *cli.Context) error {
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).PublishPost(c.Context, user.ID, c.String("community"), models.PostContent{
						Header: c.String("header"),
						Body:   c.String("body"),
					})
					if err != nil {
						return fail(err)
					}
					return report(c, nil, fmt.Sprintf("%s (%s)", resp.Message, resp.PostID))
				},
			},
			{
				Name:      "comment",
				Usage:     "comment on a post",
				ArgsUsage: "<post-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Required: true},
				},
				Action: func(c *cli.Context) error {
					postID, err := requireArg(c, "post-id")
					if err != nil {
						return err
					}
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).PostComment(c.Context, &dto.CommentRequest{
						PostID:      postID,
						CommentText: c.String("text"),
						UserID:      user.ID,
						UserName:    user.Name,
					})
					if err != nil {
						return fail(err)
					}
					if resp.Warning != "" {
						return report(c, nil, resp.Warning)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a post",
				ArgsUsage: "<post-id>",
				Action: func(c *cli.Context) error {
					postID, err := requireArg(c, "post-id")
					if err != nil {
						return err
					}
					resp, err := apiOf(c).DeletePost(c.Context, postID)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "delete-comment",
				Usage:     "delete a comment from a post",
				ArgsUsage: "<post-id> <comment-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return cli.Exit("missing argument: <post-id> <comment-id>", 2)
					}
					resp, err := apiOf(c).DeleteComment(c.Context, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
		},
	}
}

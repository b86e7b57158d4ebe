package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and remember the user on this device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "9 digit user id"},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"URBANHIVE_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			result, err := depsOf(c).Manager.Login(c.Context, c.String("id"), c.String("password"))
			if err != nil {
				return fail(err)
			}
			return report(c, nil, fmt.Sprintf("Welcome, %s", result.Data.Name))
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the user on this device",
		Action: func(c *cli.Context) error {
			return report(c, depsOf(c).Manager.Logout(c.Context), "Logged out")
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the logged in user",
		Action: func(c *cli.Context) error {
			user, err := currentUser(c)
			if err != nil {
				return err
			}
			printUser(c, user)
			return nil
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:    "register",
		Aliases: []string{"create-account"},
		Usage:   "create a new account",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "9 digit user id"},
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"URBANHIVE_PASSWORD"}},
			&cli.StringFlag{Name: "phone"},
		}, locationFlags()...),
		Action: func(c *cli.Context) error {
			_, err := apiOf(c).CreateAccount(c.Context, &dto.CreateAccountRequest{
				ID:          c.String("id"),
				Name:        c.String("name"),
				Email:       c.String("email"),
				Password:    c.String("password"),
				PhoneNumber: c.String("phone"),
				Location:    locationFrom(c),
			})
			return report(c, err, "Account created successfully! You can now log in.")
		},
	}
}

func userCommand() *cli.Command {
	return &cli.Command{
		Name:      "user",
		Usage:     "show another user's details",
		ArgsUsage: "<user-id>",
		Action: func(c *cli.Context) error {
			id, err := requireArg(c, "user-id")
			if err != nil {
				return err
			}
			user, err := apiOf(c).FetchUserDetails(c.Context, id)
			if err != nil {
				return fail(err)
			}
			printUser(c, user)
			return nil
		},
	}
}

func friendsCommand() *cli.Command {
	return &cli.Command{
		Name:  "friends",
		Usage: "friends and friend requests",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list friends and pending requests",
				Action: func(c *cli.Context) error {
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					if ok, err := printJSON(c, struct {
						Friends  []models.Friend        `json:"friends"`
						Requests []models.FriendRequest `json:"requests"`
					}{user.Friends, user.Requests}); ok {
						return err
					}
					w := table(c)
					fmt.Fprintln(w, "FRIEND\tID")
					for _, f := range user.Friends {
						fmt.Fprintf(w, "%s\t%s\n", f.Name, f.ID)
					}
					for _, r := range user.Requests {
						fmt.Fprintf(w, "%s (request)\t%s\n", r.SenderName, r.SenderID)
					}
					return w.Flush()
				},
			},
			{
				Name:      "add",
				Usage:     "send a friend request",
				ArgsUsage: "<user-id>",
				Action: func(c *cli.Context) error {
					receiver, err := requireArg(c, "user-id")
					if err != nil {
						return err
					}
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).AddFriend(c.Context, user.ID, receiver)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "respond",
				Usage:     "accept or decline a friend request",
				ArgsUsage: "<sender-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "accept", Usage: "accept instead of declining"},
				},
				Action: func(c *cli.Context) error {
					sender, err := requireArg(c, "sender-id")
					if err != nil {
						return err
					}
					if _, err := currentUser(c); err != nil {
						return err
					}
					response := models.FriendDecline
					if c.Bool("accept") {
						response = models.FriendAccept
					}
					resp, err := depsOf(c).Manager.RespondToFriendRequest(c.Context, sender, response)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
		},
	}
}

func printUser(c *cli.Context, user *models.User) {
	if ok, _ := printJSON(c, user); ok {
		return
	}
	w := table(c)
	fmt.Fprintf(w, "ID\t%s\n", user.ID)
	fmt.Fprintf(w, "Name\t%s\n", user.Name)
	if user.Email != "" {
		fmt.Fprintf(w, "Email\t%s\n", user.Email)
	}
	if user.PhoneNumber != "" {
		fmt.Fprintf(w, "Phone\t%s\n", user.PhoneNumber)
	}
	if user.Location.Address != "" {
		fmt.Fprintf(w, "Address\t%s\n", user.Location.Address)
	}
	fmt.Fprintf(w, "Communities\t%d\n", len(user.Communities))
	fmt.Fprintf(w, "Friends\t%d\n", len(user.Friends))
	fmt.Fprintf(w, "Pending requests\t%d\n", len(user.Requests))
	w.Flush()
}

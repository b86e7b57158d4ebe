package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/client"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/bootstrap"
	"github.com/urbanhive/urbanhive-client/internal/config"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// depsKey is where Before stores the wired dependencies in the app metadata
const depsKey = "deps"

func newApp() *cli.App {
	return &cli.App{
		Name:  "urbanhive",
		Usage: "neighbourhood communities, events, posts and night watches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "path to the configuration file",
				EnvVars: []string{"URBANHIVE_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as JSON",
			},
		},
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			registerCommand(),
			userCommand(),
			friendsCommand(),
			communitiesCommand(),
			eventsCommand(),
			postsCommand(),
			watchesCommand(),
		},
	}
}

func setup(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	deps, err := bootstrap.BuildDependencies(c.Context, cfg, lgr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[depsKey] = deps
	return nil
}

func teardown(c *cli.Context) error {
	if deps, ok := c.App.Metadata[depsKey].(*bootstrap.Dependencies); ok {
		return deps.Close()
	}
	return nil
}

func depsOf(c *cli.Context) *bootstrap.Dependencies {
	return c.App.Metadata[depsKey].(*bootstrap.Dependencies)
}

func apiOf(c *cli.Context) *client.Client {
	return depsOf(c).Client
}

// currentUser restores the persisted session. Commands acting on behalf of
// the user call it first.
func currentUser(c *cli.Context) (*models.User, error) {
	user, err := depsOf(c).Manager.Restore(c.Context)
	if err != nil {
		return nil, fail(err)
	}
	if user == nil {
		return nil, cli.Exit(apperrors.MsgNotLoggedIn+". Run 'urbanhive login' first.", 1)
	}
	return user, nil
}

// fail turns an operation error into the message shown to the user
func fail(err error) error {
	outcome := client.OutcomeOf(err, "")
	if outcome.Kind == apperrors.KindState && outcome.Message == "" {
		return cli.Exit(err.Error(), 1)
	}
	return cli.Exit(outcome.Message, 1)
}

// report prints the success message of an operation, or returns its failure
func report(c *cli.Context, err error, successMessage string) error {
	outcome := client.OutcomeOf(err, successMessage)
	if !outcome.Success {
		return fail(err)
	}
	if outcome.Message != "" {
		fmt.Fprintln(c.App.Writer, outcome.Message)
	}
	return nil
}

// printJSON writes v when --json is set and reports whether it did
func printJSON(c *cli.Context, v interface{}) (bool, error) {
	if !c.Bool("json") {
		return false, nil
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}

func table(c *cli.Context) *tabwriter.Writer {
	return tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
}

func requireArg(c *cli.Context, name string) (string, error) {
	if v := c.Args().First(); v != "" {
		return v, nil
	}
	return "", cli.Exit(fmt.Sprintf("missing argument: %s", name), 2)
}

func locationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "lat", Usage: "latitude"},
		&cli.Float64Flag{Name: "lng", Usage: "longitude"},
		&cli.StringFlag{Name: "address", Usage: "human readable address"},
	}
}

func locationFrom(c *cli.Context) models.Location {
	return models.Location{
		Latitude:  c.Float64("lat"),
		Longitude: c.Float64("lng"),
		Address:   c.String("address"),
	}
}

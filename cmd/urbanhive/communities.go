package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/app/state"
)

func communitiesCommand() *cli.Command {
	return &cli.Command{
		Name:    "communities",
		Aliases: []string{"community"},
		Usage:   "browse, create and join communities",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all communities, optionally filtered by name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive name filter"},
				},
				Action: func(c *cli.Context) error {
					var (
						communities []models.Community
						err         error
					)
					if c.IsSet("search") {
						communities, err = apiOf(c).SearchCommunitiesByName(c.Context, c.String("search"))
					} else {
						communities, err = apiOf(c).FetchAllCommunities(c.Context)
					}
					if err != nil {
						return fail(err)
					}
					return printCommunities(c, communities)
				},
			},
			{
				Name:  "nearby",
				Usage: "list communities within a radius of a point",
				Flags: append([]cli.Flag{
					&cli.Float64Flag{Name: "radius", Value: 5, Usage: "radius in km"},
				}, locationFlags()...),
				Action: func(c *cli.Context) error {
					communities, err := apiOf(c).FindCommunitiesByRadiusAndLocation(c.Context, c.Float64("radius"), locationFrom(c))
					if err != nil {
						return fail(err)
					}
					return printCommunities(c, communities)
				},
			},
			{
				Name:      "create",
				Usage:     "create a community managed by the logged in user",
				ArgsUsage: "<area>",
				Flags:     locationFlags(),
				Action: func(c *cli.Context) error {
					area, err := requireArg(c, "area")
					if err != nil {
						return err
					}
					if _, err := currentUser(c); err != nil {
						return err
					}
					resp, err := depsOf(c).Manager.CreateCommunity(c.Context, area, locationFrom(c))
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "show",
				Usage:     "show a community with its members, posts and upcoming night watches",
				ArgsUsage: "<area>",
				Action:    showCommunity,
			},
			{
				Name:      "members",
				Usage:     "list community members",
				ArgsUsage: "<area>",
				Action: func(c *cli.Context) error {
					area, err := requireArg(c, "area")
					if err != nil {
						return err
					}
					members, err := apiOf(c).FetchCommunityMembers(c.Context, area)
					if err != nil {
						return fail(err)
					}
					if ok, err := printJSON(c, members); ok {
						return err
					}
					w := table(c)
					fmt.Fprintln(w, "NAME\tID\tPHONE")
					for _, m := range members {
						fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.ID, m.PhoneNumber)
					}
					return w.Flush()
				},
			},
			{
				Name:      "join",
				Usage:     "ask to join a community",
				ArgsUsage: "<area>",
				Action: func(c *cli.Context) error {
					area, err := requireArg(c, "area")
					if err != nil {
						return err
					}
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).RequestToJoinCommunity(c.Context, area, user.ID, user.Name)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "respond",
				Usage:     "accept or decline a join request",
				ArgsUsage: "<request-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "accept", Usage: "accept instead of declining"},
				},
				Action: func(c *cli.Context) error {
					requestID, err := requireArg(c, "request-id")
					if err != nil {
						return err
					}
					resp, err := apiOf(c).RespondToJoinCommunityRequest(c.Context, requestID, c.Bool("accept"))
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
		},
	}
}

// communityView is what the show command renders
type communityView struct {
	Details *models.CommunityDetails    `json:"details"`
	Watches *dto.NightWatchListResponse `json:"night_watches"`
}

// showCommunity loads the details and the night watches concurrently. A
// failed watch listing still shows the details.
func showCommunity(c *cli.Context) error {
	area, err := requireArg(c, "area")
	if err != nil {
		return err
	}

	api := apiOf(c)
	scope := state.NewScope(c.Context)
	defer scope.Close()

	var (
		view       communityView
		detailsErr error
	)
	state.Go(scope, func(ctx context.Context) (*models.CommunityDetails, error) {
		return api.FetchCommunityDetails(ctx, area)
	}, func(d *models.CommunityDetails, err error) {
		view.Details, detailsErr = d, err
	})
	state.Go(scope, func(ctx context.Context) (*dto.NightWatchListResponse, error) {
		return api.FetchNightWatchesByCommunity(ctx, area)
	}, func(l *dto.NightWatchListResponse, err error) {
		if err != nil {
			depsOf(c).Logger.Warn().Err(err).Str("area", area).Msg("Night watches unavailable")
			return
		}
		view.Watches = l
	})
	_ = scope.Wait()

	if detailsErr != nil {
		return fail(detailsErr)
	}
	if ok, err := printJSON(c, view); ok {
		return err
	}

	d := view.Details
	w := table(c)
	fmt.Fprintf(w, "Area\t%s\n", d.Area)
	if d.Location.Address != "" {
		fmt.Fprintf(w, "Address\t%s\n", d.Location.Address)
	}
	fmt.Fprintf(w, "Managers\t%s\n", memberNames(d.Managers))
	fmt.Fprintf(w, "Members\t%d\n", len(d.Members))
	if d.JoinRequest != nil {
		fmt.Fprintf(w, "Pending request\t%s (%s)\n", d.JoinRequest.SenderName, d.JoinRequest.RequestID)
	}
	w.Flush()

	if len(d.Posts) > 0 {
		fmt.Fprintln(c.App.Writer)
		w = table(c)
		fmt.Fprintln(w, "POST\tHEADER\tCOMMENTS\tDATE")
		for _, p := range d.Posts {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.PostID, p.Content.Header, len(p.Comments), p.PostDate)
		}
		w.Flush()
	}

	if view.Watches != nil {
		fmt.Fprintln(c.App.Writer)
		printWatches(c, view.Watches)
	}
	return nil
}

func printCommunities(c *cli.Context, communities []models.Community) error {
	if ok, err := printJSON(c, communities); ok {
		return err
	}
	if len(communities) == 0 {
		fmt.Fprintln(c.App.Writer, "No communities found")
		return nil
	}
	w := table(c)
	fmt.Fprintln(w, "AREA\tMEMBERS\tADDRESS")
	for _, cm := range communities {
		fmt.Fprintf(w, "%s\t%d\t%s\n", cm.Area, len(cm.Members), cm.Location.Address)
	}
	return w.Flush()
}

func memberNames(members []models.Member) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

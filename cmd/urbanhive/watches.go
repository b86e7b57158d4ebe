package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

func watchesCommand() *cli.Command {
	return &cli.Command{
		Name:    "watches",
		Aliases: []string{"night-watch"},
		Usage:   "community night watches",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list upcoming night watches of a community",
				ArgsUsage: "<community>",
				Action: func(c *cli.Context) error {
					area, err := requireArg(c, "community")
					if err != nil {
						return err
					}
					list, err := apiOf(c).FetchNightWatchesByCommunity(c.Context, area)
					if err != nil {
						return fail(err)
					}
					if ok, err := printJSON(c, list); ok {
						return err
					}
					return printWatches(c, list)
				},
			},
			{
				Name:  "create",
				Usage: "schedule a night watch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "community", Required: true},
					&cli.StringFlag{Name: "date", Required: true, Usage: "watch date, YYYY-MM-DD"},
					&cli.Float64Flag{Name: "radius", Value: 1, Usage: "patrol radius in km"},
					&cli.IntFlag{Name: "positions", Value: 4, Usage: "number of volunteers"},
					&cli.Float64Flag{Name: "lat", Usage: "latitude"},
					&cli.Float64Flag{Name: "lng", Usage: "longitude"},
				},
				Action: func(c *cli.Context) error {
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).CreateNightWatch(c.Context, &dto.CreateNightWatchRequest{
						InitiatorID:     user.ID,
						CommunityArea:   c.String("community"),
						WatchDate:       c.String("date"),
						WatchRadius:     c.Float64("radius"),
						PositionsAmount: c.Int("positions"),
						Latitude:        c.Float64("lat"),
						Longitude:       c.Float64("lng"),
					})
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "join",
				Usage:     "volunteer for a night watch",
				ArgsUsage: "<watch-id>",
				Action: func(c *cli.Context) error {
					watchID, err := requireArg(c, "watch-id")
					if err != nil {
						return err
					}
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					if user.HasJoinedWatch(watchID) {
						return report(c, nil, "You are already registered to this night watch")
					}
					resp, err := apiOf(c).JoinNightWatch(c.Context, user.ID, watchID)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "close",
				Usage:     "close a night watch",
				ArgsUsage: "<watch-id>",
				Action: func(c *cli.Context) error {
					watchID, err := requireArg(c, "watch-id")
					if err != nil {
						return err
					}
					resp, err := apiOf(c).CloseNightWatch(c.Context, watchID)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
		},
	}
}

func printWatches(c *cli.Context, list *dto.NightWatchListResponse) error {
	if list.Empty() {
		fmt.Fprintln(c.App.Writer, list.Message)
		return nil
	}
	w := table(c)
	fmt.Fprintln(w, "WATCH\tDATE\tINITIATOR\tRADIUS\tSEATS\tSTATUS")
	for _, nw := range list.NightWatches {
		status := "open"
		switch {
		case nw.Closed:
			status = "closed"
		case nw.Full():
			status = "full"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f km\t%s\t%s\n",
			nw.WatchID, nw.WatchDate, nw.InitiatorName, nw.WatchRadius, nw.Seats(), status)
	}
	return w.Flush()
}

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:    "events",
		Aliases: []string{"event"},
		Usage:   "community events",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all events",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "community", Usage: "only events of this community"},
				},
				Action: func(c *cli.Context) error {
					events, err := apiOf(c).FetchAllEvents(c.Context)
					if err != nil {
						return fail(err)
					}
					if area := c.String("community"); area != "" {
						filtered := events[:0]
						for _, e := range events {
							if e.CommunityName == area {
								filtered = append(filtered, e)
							}
						}
						events = filtered
					}
					if ok, err := printJSON(c, events); ok {
						return err
					}
					if len(events) == 0 {
						fmt.Fprintln(c.App.Writer, "No events found")
						return nil
					}
					w := table(c)
					fmt.Fprintln(w, "EVENT\tNAME\tTYPE\tCOMMUNITY\tSTART\tEND\tATTENDING")
					for _, e := range events {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
							e.EventID, e.EventName, e.EventType, e.CommunityName, e.StartTime, e.EndTime, len(e.Attending))
					}
					return w.Flush()
				},
			},
			{
				Name:  "create",
				Usage: "create an event in a community",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "community", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "type", Value: "social"},
					&cli.StringFlag{Name: "start", Required: true, Usage: "ISO-8601 start time"},
					&cli.StringFlag{Name: "end", Required: true, Usage: "ISO-8601 end time"},
					&cli.StringSliceFlag{Name: "guest", Usage: "user id to invite, repeatable"},
				}, locationFlags()...),
				Action: func(c *cli.Context) error {
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).CreateEvent(c.Context, &dto.CreateEventRequest{
						Initiator:     user.ID,
						CommunityName: c.String("community"),
						Location:      locationFrom(c),
						EventName:     c.String("name"),
						EventType:     c.String("type"),
						StartTime:     c.String("start"),
						EndTime:       c.String("end"),
						GuestList:     c.StringSlice("guest"),
					})
					if err != nil {
						return fail(err)
					}
					return report(c, nil, fmt.Sprintf("%s (%s)", resp.Message, resp.EventID))
				},
			},
			{
				Name:      "join",
				Usage:     "attend an event",
				ArgsUsage: "<event-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "community", Usage: "community of the event"},
				},
				Action: func(c *cli.Context) error {
					eventID, err := requireArg(c, "event-id")
					if err != nil {
						return err
					}
					user, err := currentUser(c)
					if err != nil {
						return err
					}
					resp, err := apiOf(c).JoinEvent(c.Context, user.ID, c.String("community"), eventID)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an event",
				ArgsUsage: "<event-id>",
				Action: func(c *cli.Context) error {
					eventID, err := requireArg(c, "event-id")
					if err != nil {
						return err
					}
					resp, err := apiOf(c).DeleteEvent(c.Context, eventID)
					if err != nil {
						return fail(err)
					}
					return report(c, nil, resp.Message)
				},
			},
		},
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/config"
	"github.com/mogumo/levemagi/internal/events"
)

var watchCmd = &cobra.Command{
	Use:         "watch [topic]",
	Short:       "Stream progression events from the bus",
	GroupID:     "system",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		url := natsURL
		if url == "" {
			url = os.Getenv("LEVEMAGI_NATS_URL")
		}
		if url == "" {
			if profiles, err := config.LoadProfiles(); err == nil {
				if p, err := profiles.ActiveProfile(); err == nil {
					url = p.NATSURL
				}
			}
		}
		if url == "" {
			fatal("no NATS URL (set --nats-url or LEVEMAGI_NATS_URL)")
		}

		topic := "levemagi.>"
		if len(args) == 1 {
			topic = args[0]
		}

		sub, err := events.NewNATSSubscriber(url)
		if err != nil {
			fatal("connecting to event bus: %v", err)
		}
		defer sub.Close()

		ch, cancel, err := sub.Subscribe(topic)
		if err != nil {
			fatal("subscribing to %s: %v", topic, err)
		}
		defer cancel()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", topic)
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-ch:
				if !ok {
					return nil
				}
				fmt.Println(string(msg))
			}
		}
	},
}

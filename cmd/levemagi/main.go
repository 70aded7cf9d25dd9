package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/config"
	"github.com/mogumo/levemagi/internal/events"
	"github.com/mogumo/levemagi/internal/localstore"
	"github.com/mogumo/levemagi/internal/state"
	"github.com/mogumo/levemagi/internal/ui"
)

var (
	apiURL     string
	token      string
	natsURL    string
	jsonOutput bool
	noColor    bool

	cfg   *config.Config
	store *state.Store
	local *localstore.Store
)

// skipStore marks commands that manage configuration and never touch
// the state tree, so no backend round trip happens on their behalf.
const skipStore = "levemagi_skip_store"

func resolveConnection() {
	if apiURL != "" || token != "" {
		return
	}
	profiles, err := config.LoadProfiles()
	if err != nil {
		return
	}
	p, err := profiles.ActiveProfile()
	if err != nil {
		return
	}
	if apiURL == "" {
		apiURL = p.URL
	}
	if token == "" {
		token = p.Token
	}
	if natsURL == "" {
		natsURL = p.NATSURL
	}
}

var rootCmd = &cobra.Command{
	Use:   "levemagi <command>",
	Short: "Gamified task tracker: grow XP by finishing what you start",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		if cmd.Annotations[skipStore] != "" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if apiURL == "" {
			apiURL = cfg.APIURL
		}
		if token == "" {
			token = cfg.Token
		}
		if natsURL == "" {
			natsURL = cfg.NATSURL
		}
		resolveConnection()

		statePath := cfg.StatePath
		if statePath == "" {
			statePath, err = localstore.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolving state path: %w", err)
			}
		}
		local = localstore.New(statePath)

		opts := state.Options{
			Local:        local,
			PollInterval: cfg.PollInterval,
			LevelPolicy:  cfg.LevelPolicy,
		}
		if apiURL != "" {
			opts.Client = api.NewHTTPClient(apiURL, token)
		}
		if natsURL != "" {
			pub, perr := events.NewNATSPublisher(natsURL)
			if perr != nil {
				fmt.Fprintf(os.Stderr, "Warning: event bus unavailable: %v\n", perr)
			} else {
				opts.Events = pub
			}
		}
		store = state.New(opts)
		store.Init(context.Background())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store == nil {
			return
		}
		if apiURL == "" {
			// Offline mode persists by snapshot; authenticated mode
			// relies on the remote writes already fired.
			if err := store.SaveLocal(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: saving local state: %v\n", err)
			}
		}
		store.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API URL (default from LEVEMAGI_API_URL or the active profile)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "session token (default from LEVEMAGI_TOKEN or the active profile)")
	rootCmd.PersistentFlags().StringVar(&natsURL, "nats-url", "", "NATS URL for progression events")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "tasks", Title: "Tasks:"},
		&cobra.Group{ID: "progression", Title: "Progression:"},
		&cobra.Group{ID: "knowledge", Title: "Knowledge:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	cobra.EnableCommandSorting = false

	// Tasks
	rootCmd.AddCommand(nutsCmd)
	rootCmd.AddCommand(leafCmd)
	rootCmd.AddCommand(trunkCmd)
	rootCmd.AddCommand(worklogCmd)

	// Progression
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(gachaCmd)

	// Knowledge
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(portalCmd)
	rootCmd.AddCommand(resourceCmd)
	rootCmd.AddCommand(tagCmd)

	// System
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

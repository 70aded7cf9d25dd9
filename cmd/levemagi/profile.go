package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/config"
)

var profileCmd = &cobra.Command{
	Use:         "profile",
	Short:       "Manage named backend profiles",
	GroupID:     "system",
	Annotations: map[string]string{skipStore: "true"},
}

var profileListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List profiles",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(profiles)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tACTIVE\tURL\tDESCRIPTION")
		for name, p := range profiles.Profiles {
			active := ""
			if name == profiles.Active {
				active = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, active, p.URL, p.Description)
		}
		w.Flush()
		return nil
	},
}

var profileAddCmd = &cobra.Command{
	Use:         "add <name> <url>",
	Short:       "Add or update a profile",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profileToken, _ := cmd.Flags().GetString("token")
		nats, _ := cmd.Flags().GetString("nats-url")
		description, _ := cmd.Flags().GetString("description")

		profiles, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		profiles.Profiles[args[0]] = config.Profile{
			URL:         args[1],
			Token:       profileToken,
			NATSURL:     nats,
			Description: description,
		}
		if profiles.Active == "" {
			profiles.Active = args[0]
		}
		if err := config.SaveProfiles(profiles); err != nil {
			return err
		}
		fmt.Printf("Saved profile %s\n", args[0])
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:         "use <name>",
	Short:       "Make a profile active",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if _, ok := profiles.Profiles[args[0]]; !ok {
			fatal("profile %s not found", args[0])
		}
		profiles.Active = args[0]
		if err := config.SaveProfiles(profiles); err != nil {
			return err
		}
		fmt.Printf("Active profile: %s\n", args[0])
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:         "remove <name>",
	Short:       "Remove a profile",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if _, ok := profiles.Profiles[args[0]]; !ok {
			fatal("profile %s not found", args[0])
		}
		delete(profiles.Profiles, args[0])
		if profiles.Active == args[0] {
			profiles.Active = ""
		}
		if err := config.SaveProfiles(profiles); err != nil {
			return err
		}
		fmt.Printf("Removed profile %s\n", args[0])
		return nil
	},
}

func init() {
	profileAddCmd.Flags().String("token", "", "session token")
	profileAddCmd.Flags().String("nats-url", "", "NATS URL for events")
	profileAddCmd.Flags().StringP("description", "d", "", "description")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/config"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage tracking profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileRename,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

func init() {
	profileCmd.AddCommand(profileListCmd, profileAddCmd, profileRenameCmd,
		profileDeleteCmd, profileUseCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	profiles, err := env.store.ListProfiles()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROFILES"))
	fmt.Println()

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		name := p.Name
		if p.Name == env.profile {
			name = cli.MarkStyle.Render(name + " (active)")
		}
		rows = append(rows, []string{
			name,
			cli.FormatScore(p.DailyScore),
			cli.FormatScore(p.Threshold),
			cli.FormatCount(p.EntryCount),
			p.UpdatedAt.Local().Format("2006-01-02"),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Daily", "Target", "Entries", "Updated"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runProfileAdd(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.store.CreateProfile(args[0], flagScore, flagTarget); err != nil {
		return err
	}
	fmt.Printf("Created profile %q. Switch with `alphawin profile use %s`.\n", args[0], args[0])
	return nil
}

func runProfileRename(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.store.RenameProfile(args[0], args[1]); err != nil {
		return err
	}
	// Keep the active-profile setting pointing at the renamed profile.
	if env.cfg.General.Profile == args[0] {
		env.cfg.General.Profile = args[1]
		if err := config.Save(env.cfg); err != nil {
			return err
		}
	}
	fmt.Printf("Renamed %q to %q.\n", args[0], args[1])
	return nil
}

func runProfileDelete(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.store.DeleteProfile(args[0]); err != nil {
		return err
	}
	if env.cfg.General.Profile == args[0] {
		env.cfg.General.Profile = config.DefaultConfig().General.Profile
		if err := config.Save(env.cfg); err != nil {
			return err
		}
	}
	fmt.Printf("Deleted profile %q.\n", args[0])
	return nil
}

func runProfileUse(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if _, err := env.store.GetProfile(args[0]); err != nil {
		return err
	}
	env.cfg.General.Profile = args[0]
	if err := config.Save(env.cfg); err != nil {
		return err
	}
	fmt.Printf("Active profile is now %q.\n", args[0])
	return nil
}

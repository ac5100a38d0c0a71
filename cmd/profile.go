package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayumu/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage learner profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		profiles, err := s.ProfileRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet.")
			return nil
		}
		for _, p := range profiles {
			fmt.Printf("%-4d %-20s created %s\n", p.ID, p.Name, p.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile (no-op if it exists)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.ProfileRepo().Ensure(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		fmt.Printf("Profile %q ready (id %d).\n", p.Name, p.ID)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ProfileRepo().Delete(context.Background(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("profile %d not found", id)
			}
			return fmt.Errorf("delete profile: %w", err)
		}
		fmt.Printf("Profile %d deleted.\n", id)
		return nil
	},
}

// openStore opens the database at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

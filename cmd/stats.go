package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <profile>",
	Short: "Show practice statistics for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		p, err := s.ProfileRepo().Ensure(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ensure profile: %w", err)
		}

		svc := stats.NewService(s.ConversationRepo(), s.DeckRepo(), s.StoryRepo())
		sum, err := svc.Summarize(ctx, p.ID, time.Now())
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		fmt.Printf("Profile:        %s\n", p.Name)
		fmt.Printf("Streak:         %d days\n", sum.StreakDays)
		fmt.Printf("Conversations:  %d\n", sum.Conversations)
		fmt.Printf("Decks:          %d (%d cards)\n", sum.Decks, sum.Cards)
		fmt.Printf("Stories:        %d\n", sum.Stories)
		if sum.FavoriteScenario != "" {
			fmt.Printf("Favorite:       %s\n", chat.Lookup(sum.FavoriteScenario).Title)
		}
		if !sum.LastPracticed.IsZero() {
			fmt.Printf("Last practiced: %s\n", sum.LastPracticed.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

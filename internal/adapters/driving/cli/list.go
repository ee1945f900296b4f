package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled guides",
	Long:  `Print the number and title of every bundled guide. No content is read.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if guideService == nil {
		return errors.New("guide service not configured")
	}

	sections := guideService.GetSectionList(context.Background())
	if len(sections) == 0 {
		cmd.Println("No guides available.")
		return nil
	}

	cmd.Println("Android Development Guides")
	cmd.Println()
	for _, s := range sections {
		cmd.Printf("  %2d. %s\n", s.ID, s.Title)
	}
	cmd.Println()
	cmd.Printf("Run 'droidguide show <number>' to read a guide.\n")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/render"
)

// plainFlag disables Markdown styling for the show command.
var plainFlag bool

var showCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Print a guide",
	Long: `Print the content of the guide with the given number.

Output is styled for the terminal when stdout is a TTY; pipe the
output or pass --plain to get the raw Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&plainFlag, "plain", false, "Print raw Markdown without styling")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if guideService == nil {
		return errors.New("guide service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid guide number %q - run 'droidguide list' to see available guides", args[0])
	}

	section, err := guideService.GetSection(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no guide with number %d - run 'droidguide list' to see available guides", id)
		}
		return fmt.Errorf("load guide %d: %w", id, err)
	}

	text := section.Text()
	if !shouldStyle() {
		cmd.Println(text)
		return nil
	}

	settings := readerSettings()
	width := settings.WrapWidth
	if width <= 0 {
		width = terminalWidth()
	}

	styled, err := render.Markdown(text, render.Options{
		Theme:     settings.Theme,
		WrapWidth: width,
	})
	if err != nil {
		// Fall back to raw text; render.Markdown already returned it.
		cmd.Println(styled)
		return nil
	}
	cmd.Print(styled)
	return nil
}

// shouldStyle decides whether Markdown styling is applied, combining
// the --plain flag, the persisted render mode and TTY detection.
func shouldStyle() bool {
	if plainFlag {
		return false
	}
	switch readerSettings().Render {
	case domain.RenderModeNever:
		return false
	case domain.RenderModeAlways:
		return true
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// readerSettings returns persisted settings, or defaults when the
// settings service is unavailable.
func readerSettings() domain.ReaderSettings {
	if settingsService == nil {
		return domain.DefaultReaderSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultReaderSettings()
	}
	return settings
}

// terminalWidth returns the stdout terminal width, or a sensible
// default when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

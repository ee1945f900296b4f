package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/components/status"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/keymap"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/messages"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/styles"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/views/guidecontent"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/views/guides"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea. The app moves
// between exactly two logical states: the guide list and a single
// guide's content.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by all views.
	keymap *keymap.KeyMap

	// guidesView is the guide list view component.
	guidesView *guides.View

	// contentView is the guide content view component.
	contentView *guidecontent.View

	// statusBar shows state and key hints at the bottom.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	settings := ports.ReaderSettings()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		guidesView:  guides.NewView(s, km, ports.Guide),
		contentView: guidecontent.NewView(s, km, ports.Guide, settings),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewGuides,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("droidguide - Android Development Guides"),
		a.guidesView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing; leave a row for
		// the status bar.
		a.guidesView.SetDimensions(msg.Width, msg.Height-1)
		a.contentView.SetDimensions(msg.Width, msg.Height-1)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit
		if key.Matches(msg, a.keymap.Quit) && a.currentView == messages.ViewGuides {
			return a, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewGuides:
			a.guidesView, cmd = a.guidesView.Update(msg)
		case messages.ViewGuideContent:
			a.contentView, cmd = a.contentView.Update(msg)
		}
		return a, cmd

	case messages.GuidesLoaded:
		a.guidesView, cmd = a.guidesView.Update(msg)
		return a, cmd

	case messages.GuideSelected:
		// Navigate to the content view; the read runs as a command.
		a.currentView = messages.ViewGuideContent
		a.statusBar.SetState(status.StateReading)
		return a, a.contentView.SetGuide(msg.ID)

	case messages.GuideContentLoaded:
		a.contentView, cmd = a.contentView.Update(msg)
		if a.contentView.Err() != nil {
			a.statusBar.SetState(status.StateError)
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewGuides {
			a.statusBar.SetState(status.StateBrowsing)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
// It renders the active view plus the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.currentView {
	case messages.ViewGuideContent:
		body = a.contentView.View()
	default:
		body = a.guidesView.View()
	}

	if a.err != nil {
		body += "\n" + a.styles.Error.Render("Error: "+a.err.Error())
	}

	return body + "\n" + a.statusBar.View()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

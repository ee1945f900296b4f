// Package cli provides the cobra command tree for droidguide.
// It is a driving adapter: commands translate terminal invocations
// into calls on the core services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	assetadapter "github.com/mobilekata/droidguide/internal/adapters/driven/assets"
	configfile "github.com/mobilekata/droidguide/internal/adapters/driven/config/file"
	"github.com/mobilekata/droidguide/internal/core/ports/driven"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
	"github.com/mobilekata/droidguide/internal/core/services"
	"github.com/mobilekata/droidguide/internal/logger"
)

// version is the binary version, overridable at link time.
var version = "dev"

// Global flags.
var (
	verboseFlag   bool
	guidesDirFlag string
	configDirFlag string
)

// Services used by the commands. Wired in wireServices; tests may
// override them through SetServices.
var (
	catalogService  driving.CatalogService
	guideService    driving.GuideService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "droidguide",
	Short: "Browse bundled Android development best-practice guides",
	Long: `droidguide bundles a fixed set of Android development best-practice
guides and presents them in the terminal.

List the guides, print one by its number, or browse interactively:

  droidguide list
  droidguide show 1
  droidguide tui`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return wireServices()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices substitutes the services used by the commands.
// Intended for tests; passing nil for a service leaves it unchanged.
func SetServices(catalog driving.CatalogService, guide driving.GuideService, settings driving.SettingsService) {
	if catalog != nil {
		catalogService = catalog
	}
	if guide != nil {
		guideService = guide
	}
	if settings != nil {
		settingsService = settings
	}
}

// wireServices builds the default service graph: the bundled catalog,
// an asset source (embedded, or a directory when --guides-dir is
// set), and TOML-backed settings.
func wireServices() error {
	if guideService != nil && catalogService != nil {
		// Already wired (or substituted by a test).
		return nil
	}

	catalog := services.NewBundledCatalog()

	var source driven.AssetSource
	if guidesDirFlag != "" {
		dirSource, err := assetadapter.NewDirSource(guidesDirFlag)
		if err != nil {
			return fmt.Errorf("configure guides dir: %w", err)
		}
		logger.Info("reading guides from %s", dirSource.Root())
		source = dirSource
	} else {
		source = assetadapter.NewEmbeddedSource()
	}

	catalogService = catalog
	guideService = services.NewGuideService(catalog, source)

	configStore, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		// Settings are presentation polish; a broken config dir must
		// not keep guides from loading.
		logger.Warn("config store unavailable: %v", err)
		settingsService = services.NewSettingsService(nil)
		return nil
	}
	logger.Debug("settings loaded from %s", configStore.Path())
	settingsService = services.NewSettingsService(configStore)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&guidesDirFlag, "guides-dir", "", "Read guides from a directory instead of the bundle")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Directory for the settings file (default ~/.droidguide)")
}

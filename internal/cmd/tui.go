package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/logging"
	"github.com/debaite/podium/internal/tui"
	"github.com/debaite/podium/internal/tui/styles"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure a debate",
	Long: `Open the configuration builder: topic, stances, provider
credentials, engagement rules and an optional manual participant
roster. Starting the debate from there stages the configuration and
switches to the live view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.ViewSetup)
	},
}

var debateCmd = &cobra.Command{
	Use:   "debate",
	Short: "Run the staged debate live",
	Long: `Open the live view and run the most recently staged debate
configuration. Without a staged configuration this drops back to the
configuration builder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.ViewLive)
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse past debate results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.ViewResults)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(debateCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runTUI(start tui.View) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer func() { _ = log.Close() }()

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	applyUserTheme(log)

	return tui.New(cfg, client, log, start).Run()
}

// applyUserTheme installs a custom palette when the user dropped a
// theme.yaml next to the config file. A broken theme is logged and
// skipped, never fatal.
func applyUserTheme(log *logging.Logger) {
	path := filepath.Join(config.ConfigDir(), "theme.yaml")
	if _, err := os.Stat(path); err != nil {
		return
	}
	theme, err := styles.LoadThemeFile(path)
	if err != nil {
		log.Warn("ignoring broken theme file", "path", path, "error", err.Error())
		return
	}
	theme.Apply()
	log.Info("applied user theme", "theme", theme.Name)
}

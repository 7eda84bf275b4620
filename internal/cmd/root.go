package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "podium",
	Short: "Terminal client for the Debaite debate platform",
	Long: `Podium is a terminal client for the Debaite AI debate platform.
It configures debates, watches them unfold live, and browses past
results. All debate orchestration happens in the Debaite backend;
podium renders state and issues requests.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/podium/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Debaite backend base URL (overrides server.base_url)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/podium")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PODIUM")
	// PODIUM_SERVER_BASE_URL maps to server.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger opens the log file under the state dir, or a no-op logger
// when logging is disabled.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	log, err := logging.NewLogger(cfg.Paths.ResolveStateDir(), cfg.Logging.Level)
	if err != nil {
		// logging must never block the client
		return logging.NopLogger()
	}
	return log
}

// newClient builds the backend client and, when configured, verifies
// the backend answers its health endpoint before the TUI takes over
// the terminal.
func newClient(cfg *config.Config, log *logging.Logger) (api.Client, error) {
	client := api.NewHTTPClient(cfg.Server.BaseURL, cfg.Server.Timeout(), log.With("component", "api"))

	if cfg.Server.HealthCheck {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			return nil, fmt.Errorf("backend at %s is not responding: %w", cfg.Server.BaseURL, err)
		}
	}
	return client, nil
}

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/debaite/podium/internal/config"
	"github.com/debaite/podium/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify podium configuration",
	Long: `View or modify podium configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  podium config set server.base_url http://127.0.0.1:8000
  podium config set tui.speaking_decay_ms 3000
  podium config set debate.max_letters 1200

Valid keys:
  server.base_url          - Debaite backend base URL
  server.timeout_seconds   - Request timeout in seconds
  server.health_check      - Ping /health before opening the TUI (true/false)
  tui.sidebar_width        - Live view sidebar width in columns
  tui.transcript_lines     - Max transcript lines kept on screen
  tui.speaking_decay_ms    - Speaking highlight decay in milliseconds
  debate.max_letters       - Default per-turn character budget
  debate.insults_allowed   - Default engagement rule (true/false)
  debate.lies_allowed      - Default engagement rule (true/false)
  debate.min_stances       - Minimum non-blank stances to start
  providers.gemini_model   - Default model per provider
  providers.openai_model
  providers.deepseek_model
  providers.claude_model
  logging.enabled          - Write a debug log file (true/false)
  logging.level            - Log level: debug, info, warn, error
  paths.state_dir          - Directory for staged configs and logs`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/podium/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Current configuration:")
	fmt.Println()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("server:")
	fmt.Printf("  base_url: %s\n", cfg.Server.BaseURL)
	fmt.Printf("  timeout_seconds: %d\n", cfg.Server.TimeoutSeconds)
	fmt.Printf("  health_check: %v\n", cfg.Server.HealthCheck)

	fmt.Println("tui:")
	fmt.Printf("  sidebar_width: %d\n", cfg.TUI.SidebarWidth)
	fmt.Printf("  transcript_lines: %d\n", cfg.TUI.TranscriptLines)
	fmt.Printf("  speaking_decay_ms: %d\n", cfg.TUI.SpeakingDecayMs)

	fmt.Println("debate:")
	fmt.Printf("  max_letters: %d\n", cfg.Debate.MaxLetters)
	fmt.Printf("  insults_allowed: %v\n", cfg.Debate.InsultsAllowed)
	fmt.Printf("  lies_allowed: %v\n", cfg.Debate.LiesAllowed)
	fmt.Printf("  min_stances: %d\n", cfg.Debate.MinStances)

	fmt.Println("providers:")
	for _, name := range config.ValidProviders() {
		fmt.Printf("  %s_model: %s\n", name, cfg.Providers.DefaultModel(name))
	}

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)

	fmt.Println("paths:")
	fmt.Printf("  state_dir: %s\n", cfg.Paths.ResolveStateDir())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"server.base_url":          "string",
		"server.timeout_seconds":   "int",
		"server.health_check":      "bool",
		"tui.sidebar_width":        "int",
		"tui.transcript_lines":     "int",
		"tui.speaking_decay_ms":    "int",
		"debate.max_letters":       "int",
		"debate.insults_allowed":   "bool",
		"debate.lies_allowed":      "bool",
		"debate.min_stances":       "int",
		"providers.gemini_model":   "string",
		"providers.openai_model":   "string",
		"providers.deepseek_model": "string",
		"providers.claude_model":   "string",
		"logging.enabled":          "bool",
		"logging.level":            "string",
		"paths.state_dir":          "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'podium config set --help' to see valid keys", key)
	}

	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "logging.level" && !validLogLevel(value) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(logging.ValidLevels(), ", "))
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func validLogLevel(level string) bool {
	for _, l := range logging.ValidLevels() {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'podium config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# Podium configuration

# Debaite backend connection
server:
  base_url: http://127.0.0.1:8000
  # Request timeout in seconds
  timeout_seconds: 30
  # Ping /health before opening the TUI
  health_check: true

# TUI settings
tui:
  # Live view sidebar width in columns
  sidebar_width: 32
  # Max transcript lines kept on screen
  transcript_lines: 500
  # Speaking highlight decay in milliseconds
  speaking_decay_ms: 3000

# Defaults for new debate configurations
debate:
  max_letters: 1500
  insults_allowed: false
  lies_allowed: false
  # Minimum non-blank stances required to start a debate
  min_stances: 1

# Default model per provider
providers:
  gemini_model: gemini/gemini-1.5-flash
  openai_model: gpt-4o-mini
  deepseek_model: deepseek/deepseek-chat
  claude_model: anthropic/claude-3-haiku-20240307

# Debug log file under the state dir
logging:
  enabled: true
  level: info

# Where staged configurations and logs live
# Empty means $XDG_STATE_HOME/podium or ~/.local/state/podium
paths:
  state_dir: ""
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/debate"
	"github.com/debaite/podium/internal/logging"
	"github.com/debaite/podium/internal/setup"
)

var (
	runFile    string
	runName    string
	runCount   int
	runVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run debates headless, without the TUI",
	Long: `Run one or more complete debates without opening the TUI,
streaming the transcript to stdout. The configuration comes from the
staged file by default; --file loads a local JSON configuration and
--name loads a configuration saved on the backend.`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "JSON debate configuration file")
	runCmd.Flags().StringVarP(&runName, "name", "n", "", "server-side saved configuration name")
	runCmd.Flags().IntVar(&runCount, "count", 1, "number of debates to run")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print round and turn markers")
	rootCmd.AddCommand(runCmd)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if runCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if runFile != "" && runName != "" {
		return fmt.Errorf("--file and --name are mutually exclusive")
	}

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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	debateCfg, err := resolveRunConfig(ctx, client, cfg.Paths.ResolveStateDir())
	if err != nil {
		return err
	}

	for i := 0; i < runCount; i++ {
		if runCount > 1 {
			fmt.Printf("=== debate %d/%d ===\n", i+1, runCount)
		}
		if err := runOneDebate(ctx, client, log, debateCfg); err != nil {
			return err
		}
	}
	return nil
}

// resolveRunConfig picks the configuration source: an explicit file, a
// server-side saved configuration, or the staged file.
func resolveRunConfig(ctx context.Context, client api.Client, stateDir string) (*api.DebateConfig, error) {
	switch {
	case runFile != "":
		data, err := os.ReadFile(runFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}
		var cfg api.DebateConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("configuration file %s does not parse: %w", runFile, err)
		}
		return &cfg, nil

	case runName != "":
		cfg, err := client.GetConfig(ctx, runName)
		if err != nil {
			return nil, fmt.Errorf("failed to load server configuration %q: %w", runName, err)
		}
		return cfg, nil

	default:
		cfg, err := setup.LoadStaged(stateDir)
		if err != nil {
			return nil, fmt.Errorf("no configuration to run, stage one with 'podium setup' or pass --file/--name: %w", err)
		}
		return cfg, nil
	}
}

func runOneDebate(ctx context.Context, client api.Client, log *logging.Logger, cfg *api.DebateConfig) error {
	driver := debate.NewDriver(client, log.With("component", "runner"))

	state, err := driver.Run(ctx, *cfg, printEvent)
	if err != nil {
		return fmt.Errorf("debate failed: %w", err)
	}

	fmt.Println()
	if state.Winner != "" {
		fmt.Printf("winner: %s\n", state.Winner)
	} else {
		fmt.Println("no winner declared")
	}
	fmt.Printf("estimated cost: $%.4f\n", state.TotalCost)
	return nil
}

// printEvent streams one decoded event to stdout.
func printEvent(ev debate.Event, _ debate.State) {
	switch ev := ev.(type) {
	case debate.InitialStateEvent:
		fmt.Printf("topic: %s\n", ev.Topic)
		for _, d := range ev.Participants {
			fmt.Printf("  %s (%s, %s) arguing %q\n", d.Name, d.Role, d.Brain, d.OriginalPosition)
		}
	case debate.RoundStartEvent:
		if runVerbose {
			fmt.Printf("-- round %d --\n", ev.Round)
		}
	case debate.TurnStartEvent:
		if runVerbose {
			fmt.Printf("-- round %d, turn %d --\n", ev.Round, ev.Turn)
		}
	case debate.InterventionEvent:
		if ev.IsModerator() {
			fmt.Printf("[moderator:%s] %s: %s\n", ev.Action, ev.Participant, ev.Text)
		} else {
			fmt.Printf("%s: %s\n", ev.Participant, ev.Text)
		}
	case debate.SanctionEvent:
		fmt.Printf("! %s sanctioned, strikes: %d\n", ev.Participant, ev.Strikes)
	case debate.VetoEvent:
		fmt.Printf("! %s vetoed: %s\n", ev.Participant, ev.Reason)
	case debate.FinishedEvent:
		fmt.Printf("debate finished, results at %s\n", ev.ResultPath)
	}
}

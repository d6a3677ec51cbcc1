// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer play          - Play the level (default command)
//	platformer serve         - Start SSH server for remote play
//	platformer scores        - Show the best finished runs
//	platformer scoreboard    - Browse finished runs interactively
//	platformer list          - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for the scenery scatter
//	--db <path>           - Set database path (default: ~/.platformer/runs.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Super Platformer - run, jump and stomp in your terminal",
	Long: `Super Platformer is a side-scrolling platformer for the terminal.
Run to the flag pole at the end of the level before the clock runs out,
stomp the walkers, collect coins and stay out of the gaps.

Available commands:
  play        - Play the level (default)
  serve       - Start SSH server for remote play
  scores      - Show the best finished runs
  scoreboard  - Browse finished runs interactively
  list        - List registered games

Examples:
  platformer
  platformer play --difficulty hard
  platformer play --remote :8080
  platformer serve --ssh :2222
  platformer scores`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// checkConfig rejects a --config file that cannot be read or fails
// validation. Games load the same path later and cannot report errors.
func checkConfig(path string) error {
	if path == "" {
		return nil
	}
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return nil
}

// gameTitle returns the display title of the hosted game.
func gameTitle() string {
	return platformer.New().Title()
}

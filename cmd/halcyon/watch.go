package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"halcyon-bio/halcyon/pkg/cli"
	"halcyon-bio/halcyon/pkg/watcher"
)

var watchFlags struct {
	file     string
	debounce time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-lint a policy-set file on every change",
	Long: `Watch a policy-set file and re-lint it after every save.

The watch runs until interrupted (Ctrl-C). Lint failures are reported and
watching continues, so a bad save can be fixed without restarting.

Examples:
  # Watch a policy-set file
  halcyon watch --file policies.yaml

  # Slower debounce for editors that write in bursts
  halcyon watch --file policies.yaml --debounce 500ms`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.file, "file", "f", "", "policy-set file to watch (required)")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 100*time.Millisecond, "quiet period before re-linting")
	_ = watchCmd.MarkFlagRequired("file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	relint := func() error {
		results := lintPolicyFile(watchFlags.file)
		writeLintText(os.Stdout, results, false)
		if failed(results, false) {
			return fmt.Errorf("%s has lint errors", watchFlags.file)
		}
		return nil
	}

	// Lint once up front so the first feedback doesn't wait for a save.
	if err := relint(); err != nil {
		slog.Error("initial lint failed", "error", err)
	}

	config := watcher.DefaultConfig()
	config.Path = watchFlags.file
	config.DebounceInterval = watchFlags.debounce

	fw, err := watcher.New(config, slog.Default())
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer func() { _ = fw.Stop() }()

	ctx := cli.SetupSignalHandler()
	if err := fw.Watch(ctx, relint); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puku-runner/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the embedded default config as YAML.
Save it to ~/.arcade/configs/runner.yaml or ./configs/runner.yaml to customize the game,
or pass a file with --config. Keys left out keep their default values.

Examples:
  runner config > configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if _, err := config.LoadRunner(flagCheck); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", flagCheck)
}

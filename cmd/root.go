// =============================================================================
// Agreement Payload Builder - Root Command
// =============================================================================
//
// Defines the root Cobra command the subcommands attach to:
//
//   payloadgen
//   ├── process   (convert form files to submission payloads)
//   ├── validate  (check form files against engine preconditions)
//   └── version
//
// The root command owns the global flags and logger setup.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file, overridable with
// --config.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// log is the application logger, shared by all commands.
var log = logrus.New()

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "payloadgen",
	Short: "Agreement Payload Builder - Convert agreement form submissions to webhook payloads",
	Long: `Agreement Payload Builder converts structured sole-agency agreement form
submissions (JSON) into flat, webhook-ready submission payload records.

The synthesis engine is deterministic: the same form always produces the
same payload, byte for byte, so reprocessing is always safe.

Example Usage:
  payloadgen process                     # Convert all forms in the input directory
  payloadgen process --config ./my.yaml  # Use a custom configuration file
  payloadgen validate                    # Check forms without converting them`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	cobra.OnInitialize(initLogger)
}

// initLogger configures the shared logger from the --verbose flag. The
// configured log level, if any, is applied once the config file loads.
func initLogger() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

// applyLogLevel raises the logger to the configured level unless --verbose
// already forced debug.
func applyLogLevel(configured string) {
	if verbose {
		return
	}
	level, err := logrus.ParseLevel(configured)
	if err != nil {
		log.Warnf("Invalid log_level %q, defaulting to info", configured)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/astef/bitvec"
	"github.com/spf13/cobra"
)

var (
	Version string
	Commit  string

	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitvec",
	Short: "Inspect bit vector layouts",
	Long: `bitvec shows how a sequence of bits is laid out in storage elements
for a given bit order and element width, and checks bit orders for consistency.`,
	SilenceUsage: true,
	Version:      Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log allocation events to stderr")
}

func logger() *bitvec.Logger {
	if !verbose {
		return bitvec.NoopLogger()
	}
	return bitvec.NewTextLogger(slog.LevelDebug)
}

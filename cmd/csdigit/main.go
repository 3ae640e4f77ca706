// Command csdigit converts between decimal numbers and Canonical Signed
// Digit (CSD) representation from the shell.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/csdigit/csd"
)

// version is stamped by the release build; "dev" otherwise.
var version = "dev"

var (
	// Global flags
	verbosity int
	places    int
	nnz       int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:     "csdigit",
	Short:   "Convert between decimal and Canonical Signed Digit representation",
	Version: version,
	Long: `csdigit converts decimal numbers to Canonical Signed Digit (CSD) strings
and back. CSD writes a constant with the digits '+', '-' and '0' so that a
hardware multiplier for it reduces to shift-add/shift-subtract operations.

Examples:
  csdigit to-csd 28.5 --places 2    # +00-00.+0
  csdigit to-csdnnz 28.5 --nnz 4    # +00-00.+
  csdigit to-decimal "+00-00.+"     # 28.5`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Map the verbosity count onto a zap level, warn by default.
		level := zapcore.WarnLevel
		switch {
		case verbosity == 1:
			level = zapcore.InfoLevel
		case verbosity >= 2:
			level = zapcore.DebugLevel
		}
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// toCSDCmd encodes with a fixed number of fractional places.
var toCSDCmd = &cobra.Command{
	Use:   "to-csd <decimal>",
	Short: "Convert a decimal number to CSD with a fixed fractional width",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid decimal %q: %w", args[0], err)
		}
		logger.Debug("encoding fixed-places",
			zap.Float64("value", value),
			zap.Int("places", places))
		out, err := csd.ToCSD(value, places)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// toCSDNNZCmd encodes with a fixed budget of non-zero digits.
var toCSDNNZCmd = &cobra.Command{
	Use:   "to-csdnnz <decimal>",
	Short: "Convert a decimal number to CSD with a non-zero digit budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid decimal %q: %w", args[0], err)
		}
		logger.Debug("encoding fixed-budget",
			zap.Float64("value", value),
			zap.Int("nnz", nnz))
		out, err := csd.ToCSDNNZ(value, nnz)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// toDecimalCmd decodes a CSD string.
var toDecimalCmd = &cobra.Command{
	Use:   "to-decimal <csd-string>",
	Short: "Convert a CSD string back to a decimal number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("decoding", zap.String("csd", args[0]))
		value, err := csd.ToDecimal(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVar(&verbosity, "verbose",
		"increase log verbosity (repeat for more detail)")

	toCSDCmd.Flags().IntVar(&places, "places", 4, "number of fractional CSD digits")
	toCSDNNZCmd.Flags().IntVar(&nnz, "nnz", 4, "maximum number of non-zero digits")

	rootCmd.AddCommand(toCSDCmd, toCSDNNZCmd, toDecimalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

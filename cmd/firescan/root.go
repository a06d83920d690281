package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "firescan",
	Short: "Fire-safety analysis for drawing-exchange files",
	Long:  "Firescan decodes DXF drawings, classifies fire-safety elements by bilingual labels and geometry, and reports spacing and coverage measurements.",
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("config", "", "Path to an options YAML file")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("FIRESCAN")
	viper.AutomaticEnv()
}

// newLogger builds the stderr logger all commands share. JSON output goes
// to stdout, so logging stays on stderr to keep it machine-readable.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

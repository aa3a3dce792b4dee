package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flavono123/schemer/internal/config"
	"github.com/flavono123/schemer/internal/field"
)

var (
	configPath  string
	empty       bool
	format      string
	indent      int
	debug       bool
	printOnExit bool

	cfg config.Config

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:           "schemer",
	Short:         "Build a nested field schema and watch its JSON take shape",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c

		closer, err := setupLogging(cfg.Debug)
		if err != nil {
			return err
		}
		closeLog = closer
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <config dir>/schemer/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&empty, "empty", false, "start with no fields")
	rootCmd.PersistentFlags().StringVar(&format, "format", config.FormatJSON, "preview format (json or yaml)")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", config.DefaultIndent, "preview indent")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to "+logFile)
	rootCmd.Flags().BoolVar(&printOnExit, "print", false, "print the final preview on exit")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

// loadConfig reads the config file, then lets explicit flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to locate config dir: %w", err)
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		c.Format = format
	}
	if flags.Changed("indent") {
		c.Indent = indent
	}
	if flags.Changed("debug") {
		c.Debug = debug
	}
	return c, c.Validate()
}

const logFile = "debug.log"

// setupLogging keeps stdout free for the TUI. The returned func closes the
// log file and silences the logger.
func setupLogging(enabled bool) (func() error, error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to log to file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	return func() error {
		log.SetOutput(io.Discard)
		return f.Close()
	}, nil
}

func initialFields() []*field.Node {
	if empty {
		return []*field.Node{}
	}
	return field.Sample()
}

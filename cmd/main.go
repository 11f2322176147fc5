package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/omarnabikhan/autotype/internal"
	"github.com/omarnabikhan/autotype/internal/build_version"
	"github.com/omarnabikhan/autotype/internal/config"
	"github.com/omarnabikhan/autotype/internal/dictionary"
	"github.com/omarnabikhan/autotype/internal/logging"
)

// options holds the flag values of one command tree.
type options struct {
	config   string
	dict     string
	backend  string
	verbose  bool
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "autotype",
		Short: "A one-line text entry surface that autocorrects as you type",
		Long: `autotype takes over the terminal and lets you type a line of text. Every word is
corrected against a dictionary when you finish it, and sentences are capitalized.

Keys: backspace deletes a character, ctrl+h deletes a word, ctrl+q quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}
	correctCmd := &cobra.Command{
		Use:   "correct [word...]",
		Short: "Print the dictionary correction of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrect(cmd, opts, args)
		},
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build_version.GetVersion())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "config file (default ~/.autotype/config.toml)")
	flags.StringVar(&opts.dict, "dict", "", "whitespace-separated word list (default: built-in list)")

	rootCmd.Flags().StringVar(&opts.backend, "backend", "", "terminal backend: curses or raw")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show a debug status line")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(correctCmd, versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "autotype:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary.Path = opts.dict
	}
	if flags.Changed("backend") {
		cfg.Terminal.Backend = opts.backend
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Default()
	}
	return dictionary.LoadFile(path)
}

func runSession(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	baseLogger, err := logging.New(logging.Config{Level: level, File: cfg.Logging.File, Service: "autotype"})
	if err != nil {
		return err
	}
	defer baseLogger.Close()
	logger := baseLogger.With("session_id", uuid.NewString()[:8])

	// The dictionary is required before the terminal is taken over, so a bad
	// word list is reported on a normal screen.
	dict, err := loadDictionary(cfg.Dictionary.Path)
	if err != nil {
		logger.Error("dictionary load failed", "path", cfg.Dictionary.Path, "error", err)
		return err
	}

	term, err := internal.OpenTerminal(cfg.Terminal.Backend)
	if err != nil {
		return err
	}
	editor, err := internal.NewEditor(term, dict, internal.Options{Verbose: cfg.Verbose, Logger: logger})
	if err != nil {
		term.Close()
		return err
	}
	// Restores the terminal on every return path, panics included.
	defer editor.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logger.Info("session started", "backend", cfg.Terminal.Backend, "build", build_version.GetVersion())
	if err := internal.Run(ctx, editor, term, cfg.PollTimeout()); err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	logger.Info("session ended")
	return nil
}

func runCorrect(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg.Dictionary.Path)
	if err != nil {
		return err
	}
	for _, word := range args {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", word, dict.Correct(word))
	}
	return nil
}

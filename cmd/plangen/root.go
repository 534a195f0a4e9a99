package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen"
	"github.com/aretw0/plangen/internal/config"
	"github.com/aretw0/plangen/internal/logging"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/registry"
)

// app carries what every command needs once flags and config are merged.
type app struct {
	cfg    config.Config
	format encoding.Format
	mode   encoding.Mode
	logger *slog.Logger
}

func (a *app) generator(opts ...plangen.Option) *plangen.Generator {
	opts = append([]plangen.Option{plangen.WithLogger(a.logger), plangen.WithMode(a.mode)}, opts...)
	return plangen.New(opts...)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "plangen",
		Short: "plangen generates temporal-logic encodings of planning domains",
		Long: `plangen emits benchmark encodings of the slippery grid world and the triangle
tireworld: a partition into environment inputs and agent outputs followed by one
PPLTL formula, ready for F(pLTL) synthesis tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: partition, args, sections, json, yaml")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "Encoding mode: ppltl or ltlf")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	reg := registry.Default()
	for _, name := range reg.Names() {
		gen, _ := reg.Lookup(name)
		rootCmd.AddCommand(newDomainCmd(a, gen))
	}
	rootCmd.AddCommand(
		newGraphCmd(a),
		newDescribeCmd(a),
		newValidateCmd(a),
		newSweepCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// load merges the config file with the flags that were set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if a.format, err = encoding.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if a.mode, err = encoding.ParseMode(cfg.Mode); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// maxSize is the --max-size flag when set, the config value otherwise.
func (a *app) maxSize(cmd *cobra.Command) int {
	if cmd.Flags().Changed("max-size") {
		n, _ := cmd.Flags().GetInt("max-size")
		return n
	}
	return a.cfg.MaxSize
}

// parseSize accepts exactly one positive integer.
func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("size must be a positive integer, got %q", arg)
	}
	return n, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

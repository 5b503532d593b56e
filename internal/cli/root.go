// Package cli implements the flyin command line: parse one map file, report
// validation failures, and print the resulting graph.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/flyin/internal/config"
	"github.com/cory-johannsen/flyin/internal/export"
	"github.com/cory-johannsen/flyin/internal/flymap"
	"github.com/cory-johannsen/flyin/internal/observability"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"format":          "output.format",
	"no-color":        "output.no_color",
	"redeclare":       "parser.redeclare",
	"check-endpoints": "parser.check_endpoints",
	"all-errors":      "parser.collect_errors",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
}

// NewRootCommand builds the flyin command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flyin [flags] <map-file>",
		Short: "Validate a drone-delivery map and print its graph",
		Long: `flyin parses a drone-delivery map file (drone count, hubs and
connections), checks every rule of the map grammar, and prints the resulting
zone graph as a summary, YAML or JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.String("config", "", "path to a YAML configuration file")
	f.String("format", "summary", "output format: summary, yaml or json")
	f.Bool("no-color", false, "disable colored error output")
	f.String("redeclare", "warn", "zone redeclaration policy: overwrite, warn or reject")
	f.Bool("check-endpoints", true, "require connection endpoints to be declared zones")
	f.Bool("all-errors", false, "report every validation failure instead of the first")
	f.String("log-level", "warn", "log level: debug, info, warn or error")
	f.String("log-format", "console", "log format: json or console")

	return cmd
}

// loadConfig resolves configuration with precedence flag > env > file > default.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.New(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}
	return config.LoadFromViper(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// parserOptions translates configuration into flymap options.
func parserOptions(cfg config.ParserConfig, logger *zap.Logger) ([]flymap.Option, error) {
	policy, err := flymap.ParseRedeclarePolicy(cfg.Redeclare)
	if err != nil {
		return nil, err
	}
	return []flymap.Option{
		flymap.WithLogger(logger),
		flymap.WithRedeclarePolicy(policy),
		flymap.WithEndpointCheck(cfg.CheckEndpoints),
		flymap.WithErrorCollection(cfg.CollectErrors),
	}, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return usageError("%v", err)
	}

	stderr := cmd.ErrOrStderr()
	logger, err := observability.NewLogger(cfg.Logging, stderr)
	if err != nil {
		return usageError("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := parserOptions(cfg.Parser, logger)
	if err != nil {
		return usageError("%v", err)
	}

	path := args[0]
	m, err := flymap.LoadFile(path, opts...)
	if err != nil {
		code := ExitFailure
		if flymap.IsValidation(err) {
			code = ExitValidation
		}
		logger.Debug("map rejected", zap.String("path", path), zap.Error(err))
		fmt.Fprint(stderr, FormatError(err, path, cfg.Output.NoColor))
		return &ExitError{Code: code, Err: err, reported: true}
	}

	logger.Info("map loaded",
		zap.String("path", path),
		zap.Int("drones", m.DroneCount),
		zap.Int("zones", len(m.Zones)),
		zap.Int("connections", m.ConnectionCount()),
	)
	return render(cmd.OutOrStdout(), m, cfg.Output)
}

func render(w io.Writer, m *flymap.ParsedMap, out config.OutputConfig) error {
	doc := export.FromMap(m)
	switch out.Format {
	case "yaml":
		return export.EncodeYAML(w, doc)
	case "json":
		return export.EncodeJSON(w, doc)
	default:
		export.WriteSummary(w, doc, export.SummaryOptions{NoColor: out.NoColor})
		return nil
	}
}

// Execute runs the flyin command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil && !alreadyReported(err) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ee *ExitError
		if !errors.As(err, &ee) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return exitCode(err)
}

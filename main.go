package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/olehluchkiv/gopatterns/internal/analyzer"
	"github.com/olehluchkiv/gopatterns/internal/beverage"
	"github.com/olehluchkiv/gopatterns/internal/config"
	"github.com/olehluchkiv/gopatterns/internal/demo"
	"github.com/olehluchkiv/gopatterns/internal/diagram"
	"github.com/olehluchkiv/gopatterns/internal/enricher"
	"github.com/olehluchkiv/gopatterns/internal/logging"
	"github.com/olehluchkiv/gopatterns/internal/resolver"
)

func main() {
	// A missing .env is normal; anything else is worth mentioning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: reading .env: %v\n", err)
	}

	// Flags may come before or after scenario names; reorder so the
	// FlagSet sees all of them.
	flags, positional := reorderArgs(os.Args[1:])

	cli := flag.NewFlagSet("gopatterns", flag.ExitOnError)
	configPath := cli.String("config", "", "YAML file with custom ducks and orders, run as the \"custom\" scenario")
	inspect := cli.String("inspect", "", "analyze the Go packages under this directory and print a Mermaid diagram")
	output := cli.String("output", "", "write the transcript or diagram to a file instead of stdout")
	filter := cli.String("filter", "", "package path prefix filter for -inspect")
	includeUnexported := cli.Bool("include-unexported", false, "include unexported types and interfaces in -inspect")
	includeStdlib := cli.Bool("include-stdlib", false, "include standard library interfaces in -inspect")
	minVariants := cli.Int("min-variants", 2, "variants an interface needs before its holder counts as a Strategy")
	order := cli.String("order", "", "print the receipt for a comma-separated order, base first (e.g. house-blend,soy,mocha)")
	list := cli.Bool("list", false, "list scenarios and exit")
	logFile := cli.String("log-file", "logs/gopatterns.log", "log file path (empty disables)")
	logLevel := cli.String("log-level", envOr(config.EnvPrefix+"_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")

	if err := cli.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, cli.Args()...)

	var cfg *config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// The flag wins when given; otherwise the config file (and its env
	// override) decides.
	levelName := *logLevel
	if cfg != nil && !wasSet(cli, "log-level") {
		levelName = cfg.LogLevel
	}
	level, err := parseLogLevel(levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", levelName, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(logging.Options{File: *logFile, Level: level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("failed to create output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch {
	case *inspect != "":
		opts := analyzer.AnalyzeOptions{Filter: *filter, IncludeStdlib: *includeStdlib, IncludeUnexported: *includeUnexported}
		detector := &enricher.StructuralDetector{MinVariants: *minVariants}
		err = runInspect(ctx, *inspect, opts, detector, *output != "", out, logger)
	case *order != "":
		err = runOrder(*order, out, logger)
	case *list:
		err = runList(cfg, out)
	default:
		err = runScenarios(cfg, positional, out, logger)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *output != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *output)
	}
}

// scenarios returns the built-ins, plus "custom" when a config is loaded.
func scenarios(cfg *config.Config) ([]demo.Scenario, error) {
	all := demo.Builtins()
	if cfg == nil {
		return all, nil
	}
	plan, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return append(all, demo.Custom(plan)), nil
}

func runScenarios(cfg *config.Config, names []string, out io.Writer, logger *slog.Logger) error {
	all, err := scenarios(cfg)
	if err != nil {
		return err
	}
	// With a config and no names, run only what the config describes.
	if cfg != nil && len(names) == 0 {
		names = []string{"custom"}
	}
	selected, err := demo.Select(all, names)
	if err != nil {
		return err
	}
	return demo.Run(selected, out, logger)
}

func runList(cfg *config.Config, out io.Writer) error {
	all, err := scenarios(cfg)
	if err != nil {
		return err
	}
	demo.List(all, out)
	return nil
}

func runInspect(ctx context.Context, input string, opts analyzer.AnalyzeOptions, detector enricher.PatternDetector, standalone bool, out io.Writer, logger *slog.Logger) error {
	dir, err := resolver.Resolve(input, logger)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	result, err := analyzer.Analyze(ctx, dir, opts, logger)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	result = analyzer.Filter(result, opts)

	patterns := detector.Detect(result)
	for _, p := range patterns {
		logger.Info("pattern detected", "kind", p.Kind, "holder", p.Holder, "field", p.Field, "variants", len(p.Variants))
	}

	diagramOpts := diagram.DefaultDiagramOptions()
	// Files get the %%{init:}%% header so they render standalone.
	diagramOpts.IncludeInit = standalone
	_, err = fmt.Fprintln(out, diagram.GenerateMermaid(result, patterns, diagramOpts))
	return err
}

// runOrder prints the receipt for "base,condiment,...", condiments applied
// in the order written.
func runOrder(order string, out io.Writer, logger *slog.Logger) error {
	parts := strings.Split(order, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	b, err := beverage.Order(parts[0], parts[1:]...)
	if err != nil {
		return err
	}
	base, layers := beverage.Layers(b)
	logger.Debug("order built", "base", base.Description(), "layers", len(layers), "cost", b.Cost())
	_, err = fmt.Fprintln(out, beverage.Receipt(b))
	return err
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position relative to scenario names.
// Flags that take a value (e.g., -output file.txt) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlagSet := map[string]bool{
		"-config": true, "-inspect": true, "-output": true,
		"-filter": true, "-log-file": true, "-log-level": true,
		"-min-variants": true, "-order": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Accept --flag as well as -flag for the value lookup.
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlagSet[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func wasSet(cli *flag.FlagSet, name string) bool {
	found := false
	cli.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}

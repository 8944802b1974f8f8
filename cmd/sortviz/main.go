package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/store"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	size       int
	seed       int64
	speedMs    int
	maxValue   int
	themeName  string
	preset     string
	configFile string
	frameRate  int
	values     string
	headless   bool
	noAlt      bool
	logLevel   string
	logFile    string
	format     string
)

var errTooManyValues = errors.New("too many values")

const sizePrompt = "How many bars would you like to sort? (Recommended: 50-200): "

// main registers the commands and flags and runs the root command, which
// plays a freshly generated array when no subcommand is given.
// It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step through merge sort one operation at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play the merge sort trace interactively",
		RunE:  runPlay,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print every recorded step",
		RunE:  printTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot cumulative counters over the trace",
		RunE:  plotStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	for _, c := range []*cobra.Command{rootCmd, playCmd, traceCmd, statsCmd} {
		addInputFlags(c)
	}
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().IntVar(&speedMs, "speed", 0, "step interval in ms (0 = size-based default)")
		c.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
		c.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
		c.Flags().BoolVar(&headless, "headless", false, "play without the interactive interface")
		c.Flags().BoolVar(&noAlt, "no-alt-screen", false, "draw inline instead of on the alternate screen")
	}

	rootCmd.AddCommand(playCmd, traceCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addInputFlags(c *cobra.Command) {
	c.Flags().IntVar(&size, "size", config.DefaultSize, "number of elements")
	c.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	c.Flags().IntVar(&maxValue, "max-value", input.DefaultMaxValue, "largest generated value")
	c.Flags().StringVar(&values, "values", "", "comma separated input instead of random data")
	c.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// resolveConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("max-value") {
		cfg.MaxValue = maxValue
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("no-alt-screen") {
		cfg.AltScreen = !noAlt
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sizeFromUser reports whether nothing but the built-in default chose the
// array size, in which case an interactive session asks for one.
func sizeFromUser(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("size") || cmd.Flags().Changed("values") || preset != "" || configFile != "" {
		return false
	}
	if _, ok := os.LookupEnv("SORTVIZ_SIZE"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// promptSize reads a size from r. Unparseable answers fall back to def and
// out-of-range answers are clamped.
func promptSize(r io.Reader, w io.Writer, def int) int {
	fmt.Fprint(w, sizePrompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return def
	}
	return input.ClampSize(n)
}

func parseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse values: %q is not an integer", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse values: %w", trace.ErrEmptyInput)
	}
	if len(out) > input.MaxSize {
		return nil, fmt.Errorf("parse values: %w: got %d, limit %d", errTooManyValues, len(out), input.MaxSize)
	}
	return out, nil
}

func buildInput(cfg *config.Config) ([]int, input.Generator) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	gen := input.NewRandom(s)
	return gen.Generate(cfg.Size, cfg.MaxValue), gen
}

func loadInput(cmd *cobra.Command, cfg *config.Config) ([]int, input.Generator, error) {
	in, gen := buildInput(cfg)
	if cmd.Flags().Changed("values") {
		v, err := parseValues(values)
		if err != nil {
			return nil, nil, err
		}
		in = v
	}
	return in, gen, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// setupLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback; a nil fallback discards them.
func setupLogger(fallback io.Writer) (*slog.Logger, func(), error) {
	lvl, err := parseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	}
	if fallback == nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(fallback, opts)), func() {}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	interactive := !headless && isatty.IsTerminal(os.Stdout.Fd())

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = nil
	}
	logger, closeLog, err := setupLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if sizeFromUser(cmd) {
		cfg.Size = promptSize(os.Stdin, os.Stdout, cfg.Size)
	}

	in, gen, err := loadInput(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []playback.Option{
		playback.WithGenerator(gen),
		playback.WithLogger(logger),
	}
	if cfg.SpeedMs > 0 {
		opts = append(opts, playback.WithSpeed(cfg.Speed()))
	}
	ctrl, err := playback.New(in, opts...)
	if err != nil {
		return err
	}
	logger.Info("trace recorded",
		"session", ctrl.Session(),
		"size", len(in),
		"steps", ctrl.Total(),
		"speed", ctrl.Speed(),
		"tier", ctrl.Tier().Name,
	)

	if !interactive {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		r := tui.NewLiveRenderer(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
		return tui.Play(ctx, ctrl, r, cfg.FrameInterval())
	}

	var progOpts []tea.ProgramOption
	if cfg.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	m := viz.NewModel(ctrl, viz.GetTheme(cfg.Theme), cfg.FrameInterval())
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	logger.Info("session ended", "session", ctrl.Session(), "step", ctrl.Step()+1, "total", ctrl.Total())
	return nil
}

func recordFromFlags(cmd *cobra.Command) (*trace.Trace, error) {
	logger, closeLog, err := setupLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	in, _, err := loadInput(cmd, cfg)
	if err != nil {
		return nil, err
	}
	tr, err := trace.Record(in)
	if err != nil {
		return nil, err
	}
	logger.Debug("trace recorded", "size", tr.Size(), "steps", tr.Len(), "comparisons", tr.Stats().Comparisons)
	return tr, nil
}

func formatArray(arr []int) string {
	if len(arr) > 20 {
		return input.Describe(arr)
	}
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func printTrace(cmd *cobra.Command, args []string) error {
	tr, err := recordFromFlags(cmd)
	if err != nil {
		return err
	}
	return exportTrace(os.Stdout, format, tr)
}

// exportTrace writes tr as a table, or through store.Export under a fresh
// session id.
func exportTrace(w io.Writer, format string, tr *trace.Trace) error {
	if format == "" || format == "text" {
		return writeTrace(w, tr)
	}
	return store.Export(w, format, uuid.NewString(), tr)
}

func writeTrace(out io.Writer, tr *trace.Trace) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tKIND\tCMP\tACC\tOPERATION\tARRAY")
	for _, s := range tr.Snapshots() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n",
			s.Step+1,
			s.Kind,
			s.Stats.Comparisons,
			s.Stats.ArrayAccesses,
			s.Operation,
			formatArray(s.Array),
		)
	}
	return w.Flush()
}

func plotStats(cmd *cobra.Command, args []string) error {
	tr, err := recordFromFlags(cmd)
	if err != nil {
		return err
	}
	return writeStats(os.Stdout, tr)
}

func writeStats(out io.Writer, tr *trace.Trace) error {
	snaps := tr.Snapshots()
	cmp := make([]float64, len(snaps))
	acc := make([]float64, len(snaps))
	for i, s := range snaps {
		cmp[i] = float64(s.Stats.Comparisons)
		acc[i] = float64(s.Stats.ArrayAccesses)
	}

	total := tr.Stats()
	fmt.Fprintf(out, "elements: %d\n", tr.Size())
	fmt.Fprintf(out, "steps: %d\n", tr.Len())
	fmt.Fprintf(out, "comparisons: %d\n", total.Comparisons)
	fmt.Fprintf(out, "array accesses: %d\n", total.ArrayAccesses)
	fmt.Fprintf(out, "merges: %d\n\n", total.Merges)

	width := min(len(snaps), 80)
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{cmp, "cumulative comparisons"},
		{acc, "cumulative array accesses"},
	} {
		fmt.Fprintln(out, asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(width),
			asciigraph.Caption(series.caption),
		))
		fmt.Fprintln(out)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tSPEED")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		speed := "default"
		if p.SpeedMs > 0 {
			speed = fmt.Sprintf("%dms", p.SpeedMs)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, p.Size, speed)
	}
	return w.Flush()
}

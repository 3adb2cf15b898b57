// Package main provides the CLI entrypoint for dictype.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/dictype/internal/compare"
	"github.com/verte-zerg/dictype/internal/config"
	"github.com/verte-zerg/dictype/internal/model"
	"github.com/verte-zerg/dictype/internal/report"
	"github.com/verte-zerg/dictype/internal/stats"
	"github.com/verte-zerg/dictype/internal/store"
	"github.com/verte-zerg/dictype/internal/transcript"
	"github.com/verte-zerg/dictype/internal/tui"
)

const (
	defaultCurveWindow  = 20
	defaultTroubleWords = 15
	fallbackWidth       = 80
)

var (
	practiceThreshold  float64
	practiceWindowSize int
	practiceMaxSearch  int

	compareAttempt    string
	compareReference  string
	compareThreshold  float64
	compareWindowSize int
	compareMaxSearch  int

	statsTranscript  string
	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsWords       int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dictype <transcript>",
		Short:         "Dictation practice against a transcript",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().Float64Var(&practiceThreshold, "mistake-threshold", compare.DefaultMistakeThreshold, "similarity above which a word counts as a near miss (0-1]")
	rootCmd.Flags().IntVar(&practiceWindowSize, "window-size", compare.DefaultWindowSize, "reference words searched per realignment window")
	rootCmd.Flags().IntVar(&practiceMaxSearch, "max-search", compare.DefaultMaxSearch, "reference words searched ahead during realignment")

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "mistake-threshold", &practiceThreshold, fileCfg.Practice.MistakeThreshold)
	applyIntConfig(cmd, "window-size", &practiceWindowSize, fileCfg.Practice.WindowSize)
	applyIntConfig(cmd, "max-search", &practiceMaxSearch, fileCfg.Practice.MaxSearch)

	cfg := model.PracticeConfig{
		Transcript:       args[0],
		MistakeThreshold: practiceThreshold,
		WindowSize:       practiceWindowSize,
		MaxSearch:        practiceMaxSearch,
	}
	cmp, err := newComparer(cfg, fileCfg.Equivalents)
	if err != nil {
		return err
	}

	tr, err := transcript.Load(cfg.Transcript)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	program := tea.NewProgram(tui.NewModel(cmp, st, tr), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare an attempt against a reference transcript",
		Args:  cobra.NoArgs,
		RunE:  runCompareCmd,
	}
	cmd.Flags().StringVar(&compareAttempt, "attempt", "-", "attempt file, or - for stdin")
	cmd.Flags().StringVar(&compareReference, "reference", "", "reference transcript file")
	cmd.Flags().Float64Var(&compareThreshold, "mistake-threshold", compare.DefaultMistakeThreshold, "similarity above which a word counts as a near miss (0-1]")
	cmd.Flags().IntVar(&compareWindowSize, "window-size", compare.DefaultWindowSize, "reference words searched per realignment window")
	cmd.Flags().IntVar(&compareMaxSearch, "max-search", compare.DefaultMaxSearch, "reference words searched ahead during realignment")
	if err := cmd.MarkFlagRequired("reference"); err != nil {
		logErrf("failed to mark flag required: %v\n", err)
	}
	return cmd
}

func runCompareCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "mistake-threshold", &compareThreshold, fileCfg.Practice.MistakeThreshold)
	applyIntConfig(cmd, "window-size", &compareWindowSize, fileCfg.Practice.WindowSize)
	applyIntConfig(cmd, "max-search", &compareMaxSearch, fileCfg.Practice.MaxSearch)

	cfg := model.PracticeConfig{
		Transcript:       compareReference,
		MistakeThreshold: compareThreshold,
		WindowSize:       compareWindowSize,
		MaxSearch:        compareMaxSearch,
	}
	cmp, err := newComparer(cfg, fileCfg.Equivalents)
	if err != nil {
		return err
	}

	tr, err := transcript.Load(cfg.Transcript)
	if err != nil {
		return err
	}
	attempt, err := readAttempt(compareAttempt)
	if err != nil {
		return err
	}

	res := cmp.Compare(attempt, tr.Text)

	useColor := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	if err := report.Render(os.Stdout, res, terminalWidth(), useColor); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if !useColor {
		if _, err := fmt.Fprintln(os.Stdout, report.Legend()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsTranscript, "transcript", "", "transcript name filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().IntVar(&statsWords, "words", defaultTroubleWords, "number of trouble words to show")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Transcript:  statsTranscript,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
		Words:       statsWords,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rep, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, rep.Sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSessionTable(out, rep.Sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderCurvesWithSize(out, rep.Sessions, cfg.CurveWindow, terminalWidth(), 10, false); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderTroubleTable(out, rep.TroubleWords, cfg.Words); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newComparer(pc model.PracticeConfig, equivalents map[string]string) (*compare.Comparer, error) {
	cfg := compare.Config{
		MistakeThreshold: pc.MistakeThreshold,
		WindowSize:       pc.WindowSize,
		MaxSearch:        pc.MaxSearch,
	}
	table := compare.DefaultTable()
	if len(equivalents) > 0 {
		table = compare.NewTable(equivalents)
	}
	return compare.New(cfg, table)
}

func readAttempt(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read attempt: %w", err)
	}
	return string(data), nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dictype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mistake-threshold = %.2f  # Similarity above which a word counts as a near miss (0-1]
# window-size = %d          # Reference words searched per realignment window
# max-search = %d          # Reference words searched ahead during realignment

# Word pairs treated as identical during comparison.
[equivalents]
# gonna = "going"
# "y'all" = "you"
`,
		compare.DefaultMistakeThreshold,
		compare.DefaultWindowSize,
		compare.DefaultMaxSearch,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

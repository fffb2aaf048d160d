// Package main provides the CLI entrypoint for lidtrain.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lidtrain/lidtrain/internal/bank"
	"github.com/lidtrain/lidtrain/internal/config"
	"github.com/lidtrain/lidtrain/internal/model"
	"github.com/lidtrain/lidtrain/internal/session"
	"github.com/lidtrain/lidtrain/internal/stats"
	"github.com/lidtrain/lidtrain/internal/store"
	"github.com/lidtrain/lidtrain/internal/translate"
	"github.com/lidtrain/lidtrain/internal/tui"
)

const (
	defaultLang          = model.SourceLang
	defaultAutoDelayMs   = 2500
	defaultRemoveDelayMs = 600
)

var (
	practiceLang          string
	practiceRegions       []string
	practiceCategories    []string
	practiceAuto          bool
	practiceAutoDelayMs   int
	practiceRemoveDelayMs int
	practiceBankDir       string

	statsBankDir string

	resetYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lidtrain",
		Short:         "TUI trainer for the Leben in Deutschland question bank",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "display language code (de shows the source text)")
	rootCmd.Flags().StringArrayVar(&practiceRegions, "region", nil, "restrict to a region's question list (repeatable)")
	rootCmd.Flags().StringArrayVar(&practiceCategories, "category", nil, "restrict to a category (repeatable)")
	rootCmd.Flags().BoolVar(&practiceAuto, "auto", false, "advance automatically after answering")
	rootCmd.Flags().IntVar(&practiceAutoDelayMs, "auto-delay-ms", defaultAutoDelayMs, "auto-advance delay in milliseconds")
	rootCmd.Flags().IntVar(&practiceRemoveDelayMs, "remove-delay-ms", defaultRemoveDelayMs, "delay before a question leaves the view in manual mode")
	rootCmd.Flags().StringVar(&practiceBankDir, "bank-dir", "", "question bank directory")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyBoolConfig(cmd, "auto", &practiceAuto, fileCfg.Practice.Auto)
	applyIntConfig(cmd, "auto-delay-ms", &practiceAutoDelayMs, fileCfg.Practice.AutoDelayMs)
	applyIntConfig(cmd, "remove-delay-ms", &practiceRemoveDelayMs, fileCfg.Practice.RemoveDelayMs)
	applyStringConfig(cmd, "bank-dir", &practiceBankDir, fileCfg.Bank.Dir)
	if !cmd.Flags().Changed("region") && len(fileCfg.Practice.Regions) > 0 {
		practiceRegions = fileCfg.Practice.Regions
	}
	if !cmd.Flags().Changed("category") && len(fileCfg.Practice.Categories) > 0 {
		practiceCategories = fileCfg.Practice.Categories
	}
	if practiceAutoDelayMs <= 0 {
		return fmt.Errorf("--auto-delay-ms must be > 0")
	}
	if practiceRemoveDelayMs <= 0 {
		return fmt.Errorf("--remove-delay-ms must be > 0")
	}

	bankDir := resolveBankDir(practiceBankDir)
	loaded, err := bank.Load(bankDir)
	if err != nil {
		return bankLoadError(bankDir, err)
	}

	sel := model.NewFilterSelection()
	for _, region := range practiceRegions {
		region = strings.TrimSpace(strings.ToLower(region))
		if region == "" {
			continue
		}
		if loaded.RegionQuestions(region) == nil {
			return fmt.Errorf("unknown region %q (available: %s)", region, strings.Join(regionIDs(loaded), ", "))
		}
		sel.Regions[region] = struct{}{}
	}
	for _, cat := range practiceCategories {
		cat = strings.TrimSpace(cat)
		if cat == "" {
			continue
		}
		sel.Categories[cat] = struct{}{}
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

	prog, err := st.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	sess := session.New(loaded, sel, prog, session.Config{
		Auto:        practiceAuto,
		AutoDelay:   time.Duration(practiceAutoDelayMs) * time.Millisecond,
		RemoveDelay: time.Duration(practiceRemoveDelayMs) * time.Millisecond,
	})
	resolver := translate.NewResolver(translate.NewDictionary())

	uiModel := tui.NewModel(sess, resolver, loaded, st, practiceLang)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress summary",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsBankDir, "bank-dir", "", "question bank directory")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "bank-dir", &statsBankDir, fileCfg.Bank.Dir)

	bankDir := resolveBankDir(statsBankDir)
	loaded, err := bank.Load(bankDir)
	if err != nil {
		return bankLoadError(bankDir, err)
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

	prog, err := st.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	summary := stats.BuildSummary(loaded, prog)
	if _, err := fmt.Fprint(cmd.OutOrStdout(), stats.Render(summary)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all stored progress",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the wipe")
	return cmd
}

func runResetCmd(_ *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("reset wipes XP, streaks, badges and answer history; re-run with --yes to confirm")
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
	if _, err := st.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	logErrln("progress reset")
	return nil
}

func resolveBankDir(dir string) string {
	if dir != "" {
		return dir
	}
	return config.DefaultBankDir()
}

func regionIDs(b *model.Bank) []string {
	ids := make([]string, 0, len(b.Regions))
	for _, rb := range b.Regions {
		ids = append(ids, rb.Region)
	}
	return ids
}

func bankLoadError(dir string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load question bank: %v", err),
		fmt.Sprintf("expected %s (and optional %s) in: %s", bank.QuestionsFile, bank.RegionsFile, dir),
		"Point --bank-dir (or [bank] dir in the config) at your bank files.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lidtrain configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q              # Display language code (de shows the source text)
# auto = false            # Advance automatically after answering
# auto-delay-ms = %d    # Auto-advance delay in milliseconds
# remove-delay-ms = %d   # Delay before an answered question leaves a status filter
# regions = []            # Restrict practice to these region lists
# categories = []         # Restrict practice to these categories

[bank]
# dir = ""                # Question bank directory (questions.json, regions.json)
`,
		defaultLang,
		defaultAutoDelayMs,
		defaultRemoveDelayMs,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

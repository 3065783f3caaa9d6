package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"harmonia/internal/advisor"
	"harmonia/internal/config"
	"harmonia/internal/coordinate"
	"harmonia/internal/crawler"
	"harmonia/internal/git"
	"harmonia/internal/harmony"
	"harmonia/internal/reducer"
	"harmonia/internal/render"
	"harmonia/internal/report"
	"harmonia/internal/storage"
	"harmonia/internal/vocabulary"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "harmonia",
		Short: "Name/behavior dissonance linter for Python",
		Long:  "Harmonia maps function names and bodies onto a shared semantic space and reports functions whose names promise one thing while their bodies do another.",
	}
	configPath string
	dbPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "harmonia.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "harmonia.db", "Path to the run history database (SQLite)")

	analyzeCmd.Flags().Bool("json", false, "Emit the report as JSON")
	analyzeCmd.Flags().Bool("save", false, "Save this run as the new baseline")
	analyzeCmd.Flags().String("changed", "", "Only analyze files changed since the given git ref")
	analyzeCmd.Flags().String("fail-on", "", "Exit non-zero if any finding is at or above this band (medium, high, critical)")

	driftCmd.Flags().Bool("json", false, "Emit the drift as JSON")
	driftCmd.Flags().Bool("save", false, "Save this run as the new baseline after diffing")

	explainCmd.Flags().Bool("suggest", false, "Ask the configured AI model for a rename suggestion")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(vocabCmd)
}

// buildTable loads the default vocabulary and merges the configured overlay.
func buildTable(cfg *config.Config) (*vocabulary.Table, error) {
	table := vocabulary.Default()
	if cfg.Vocabulary.Overlay == "" {
		return table, nil
	}
	overlay, err := vocabulary.LoadOverlay(cfg.Vocabulary.Overlay)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary overlay: %w", err)
	}
	return table.Merge(overlay), nil
}

// analyze runs the full pipeline over a root directory, or over an explicit
// file list when paths is non-nil.
func analyze(ctx context.Context, cfg *config.Config, root string, paths []string) (*report.Run, error) {
	table, err := buildTable(cfg)
	if err != nil {
		return nil, err
	}

	scorer := harmony.NewScorer(coordinate.NewEmbedder(table), cfg.Thresholds)
	cr := crawler.NewCrawler(reducer.NewReducer(), cfg.Project.Include, cfg.Project.Ignore)

	run := report.NewRun(root)
	onFile := func(fr *reducer.FileResult) {
		run.Add(report.Assemble(fr.Path, scorer.ScoreAll(fr)))
	}

	if paths != nil {
		err = cr.ScanFiles(ctx, paths, onFile)
	} else {
		err = cr.ScanProject(ctx, root, onFile)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

func resolveRoot(cfg *config.Config, args []string) string {
	root := cfg.Project.Root
	if len(args) > 0 {
		root = args[0]
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return root
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a project and report name/behavior dissonance",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		root := resolveRoot(cfg, args)

		var paths []string
		if baseRef, _ := cmd.Flags().GetString("changed"); baseRef != "" {
			paths, err = git.ChangedPythonFiles(baseRef)
			if err != nil {
				log.Fatalf("Failed to get git changes: %v", err)
			}
			if len(paths) == 0 {
				fmt.Println("✅ No changed Python files.")
				return
			}
			fmt.Printf("📝 Analyzing %d changed files.\n", len(paths))
		} else {
			fmt.Printf("📂 Analyzing directory: %s\n", root)
		}

		start := time.Now()
		run, err := analyze(ctx, cfg, root, paths)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		fmt.Printf("✅ Scored %d functions in %d files (%v).\n\n", run.Total, run.Files, time.Since(start))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := render.JSON(os.Stdout, run); err != nil {
				log.Fatalf("Failed to encode report: %v", err)
			}
		} else {
			render.Text(os.Stdout, run)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			saveBaseline(ctx, run)
		}

		if band, _ := cmd.Flags().GetString("fail-on"); band != "" {
			if exceedsBand(run.Summary, band) {
				os.Exit(1)
			}
		}
	},
}

var driftCmd = &cobra.Command{
	Use:   "drift [path]",
	Short: "Compare the current analysis against the saved baseline",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		root := resolveRoot(cfg, args)

		store, err := storage.NewSQLiteStore(dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()

		baseline, err := store.LatestRun(ctx)
		if err != nil {
			log.Fatalf("Failed to load baseline: %v\nRun 'harmonia analyze --save' first.", err)
		}
		fmt.Printf("🔄 Baseline: run %d from %s.\n", baseline.ID, baseline.CreatedAt.Format(time.RFC3339))

		run, err := analyze(ctx, cfg, root, nil)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}

		d := report.CompareRuns(baseline.Records, relativized(run, root))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := render.JSON(os.Stdout, d); err != nil {
				log.Fatalf("Failed to encode drift: %v", err)
			}
		} else {
			render.Drift(os.Stdout, d)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			if _, err := store.SaveRun(ctx, rewriteRun(run, root)); err != nil {
				log.Fatalf("Failed to save run: %v", err)
			}
			fmt.Printf("💾 Saved new baseline to %s.\n", dbPath)
		}
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <file> <function>",
	Short: "Show the axis breakdown for one function",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		path, name := args[0], args[1]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		table, err := buildTable(cfg)
		if err != nil {
			log.Fatalf("Failed to build vocabulary: %v", err)
		}
		scorer := harmony.NewScorer(coordinate.NewEmbedder(table), cfg.Thresholds)

		fr, err := reducer.NewReducer().ReduceFile(ctx, path)
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}

		var fn *reducer.Function
		for i := range fr.Functions {
			if fr.Functions[i].Name == name {
				fn = &fr.Functions[i]
				break
			}
		}
		if fn == nil {
			log.Fatalf("Function %q not found in %s. Use the qualified name for methods (Class.method).", name, path)
		}

		rec := scorer.Score(*fn)
		render.Explain(os.Stdout, rec, axisNames())

		if suggest, _ := cmd.Flags().GetBool("suggest"); suggest {
			suggestRename(ctx, cfg, rec, functionSource(path, fn))
		}
	},
}

var vocabCmd = &cobra.Command{
	Use:   "vocab [token]",
	Short: "Show the vocabulary, or look up a single token",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		table, err := buildTable(cfg)
		if err != nil {
			log.Fatalf("Failed to build vocabulary: %v", err)
		}

		if len(args) == 1 {
			token := args[0]
			if cat, ok := table.Lookup(token); ok {
				fmt.Printf("%s → %s\n", strings.ToLower(token), cat)
			} else {
				fmt.Printf("%s is not in the vocabulary; it carries no semantic weight.\n", strings.ToLower(token))
			}
			return
		}

		fmt.Printf("📖 %d tokens\n", table.Len())
		for _, entry := range table.Entries() {
			fmt.Printf("  %-16s %s\n", entry.Token, entry.Category)
		}
	},
}

func saveBaseline(ctx context.Context, run *report.Run) {
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(ctx, rewriteRun(run, run.Root)); err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}
	fmt.Printf("💾 Saved baseline to %s.\n", dbPath)
}

// rewriteRun rebuilds a run with file paths relative to root so baselines
// survive the project being checked out at a different absolute path.
func rewriteRun(run *report.Run, root string) *report.Run {
	out := report.NewRun(root)
	for _, rep := range run.Reports {
		rel := relPath(root, rep.Path)
		records := make([]harmony.Record, len(rep.Records))
		for i, rec := range rep.Records {
			rec.File = relPath(root, rec.File)
			records[i] = rec
		}
		out.Add(report.Assemble(rel, records))
	}
	return out
}

func relativized(run *report.Run, root string) []harmony.Record {
	return rewriteRun(run, root).Records()
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func exceedsBand(s report.Summary, band string) bool {
	switch strings.ToLower(band) {
	case "medium":
		return s.Medium+s.High+s.Critical > 0
	case "high":
		return s.High+s.Critical > 0
	case "critical":
		return s.Critical > 0
	default:
		log.Fatalf("Unknown band %q for --fail-on (use medium, high or critical).", band)
		return false
	}
}

func axisNames() []string {
	names := make([]string, vocabulary.NumCategories)
	for c := vocabulary.Category(0); int(c) < vocabulary.NumCategories; c++ {
		names[c] = c.String()
	}
	return names
}

// functionSource returns the function's own lines for advisor context, or ""
// when the file cannot be re-read.
func functionSource(path string, fn *reducer.Function) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(raw), "\n")
	if fn.StartLine < 1 || fn.EndLine > len(lines) || fn.StartLine > fn.EndLine {
		return ""
	}
	return strings.Join(lines[fn.StartLine-1:fn.EndLine], "\n")
}

func suggestRename(ctx context.Context, cfg *config.Config, rec harmony.Record, source string) {
	if cfg.AI.APIKey == "" {
		fmt.Println("⚠️  No AI API key configured; skipping rename suggestion.")
		return
	}

	adv, err := advisor.NewGeminiAdvisor(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("Failed to create advisor: %v", err)
	}

	fmt.Println("🧠 Asking for a rename suggestion...")
	name, err := adv.SuggestRename(ctx, rec, source)
	if err != nil {
		log.Fatalf("Suggestion failed: %v", err)
	}
	fmt.Printf("💡 Suggested name: %s\n", name)
}

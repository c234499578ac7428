package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/duersjefen/deploy-kit/internal/cache"
	"github.com/duersjefen/deploy-kit/internal/config"
	"github.com/duersjefen/deploy-kit/internal/detect"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file...]",
	Short: "Scan config files for deployment hazards",
	Long:  "Run every rule against the given files (sst.config.ts by default) and report violations. Exits non-zero when errors are found.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "emit results as JSON")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not update the scan cache")
	checkCmd.Flags().Bool("summary-only", false, "print per-file totals without individual findings")
}

// checkedFile pairs a result with the loaded snapshot so the renderer can
// show source excerpts. file is nil for unreadable paths and cache hits.
type checkedFile struct {
	file   *source.File
	result *detect.Result
}

func runCheck(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		files = []string{"sst.config.ts"}
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	summaryOnly, _ := cmd.Flags().GetBool("summary-only")

	root := projectRoot(cmd)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	opts := detect.Options{
		DisabledRules: cfg.Disabled(),
		MaxViolations: cfg.Validate.MaxViolations,
	}

	var store *cache.Cache
	if !noCache {
		// A broken cache dir degrades to uncached scans.
		store, _ = cache.Open()
	}
	salt := cacheSalt(cfg)

	detector := detect.New(opts)
	checked := make([]checkedFile, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			checked[i] = checkOne(detector, store, salt, path, root)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if asJSON {
		results := make([]*detect.Result, len(checked))
		for i := range checked {
			results[i] = checked[i].result
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		r := ui.NewRenderer(cmd.OutOrStdout(), useColor(cmd))
		for _, c := range checked {
			if !summaryOnly {
				r.Result(c.file, c.result)
			}
			r.Summary(c.result)
		}
	}

	errorCount := 0
	for _, c := range checked {
		errorCount += c.result.ErrorCount
		for _, fail := range c.result.Failures {
			fmt.Fprintf(os.Stderr, "internal: rule %s failed on %s: %s\n", fail.RuleID, c.result.Path, fail.Err)
		}
	}
	if errorCount > 0 {
		rootCmd.SilenceErrors = true
		return fmt.Errorf("check found %d errors", errorCount)
	}
	return nil
}

func checkOne(detector *detect.Detector, store *cache.Cache, salt, path, root string) checkedFile {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		// Let the detector produce its synthetic finding.
		return checkedFile{result: detector.Detect(fs, path, root)}
	}
	f := fs.Get(id)
	if store != nil {
		if res, ok := store.Get(f.Hash, salt); ok {
			res.Path = path
			return checkedFile{file: f, result: res}
		}
	}
	res := detector.DetectFile(f, root)
	if store != nil && len(res.Failures) == 0 {
		_ = store.Put(f.Hash, salt, res)
	}
	return checkedFile{file: f, result: res}
}

// cacheSalt fingerprints everything besides file content that changes a
// scan result.
func cacheSalt(cfg *config.Config) string {
	disabled := append([]string(nil), cfg.Validate.DisabledRules...)
	sort.Strings(disabled)
	return fmt.Sprintf("%s|max=%d", strings.Join(disabled, ","), cfg.Validate.MaxViolations)
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duersjefen/deploy-kit/internal/config"
	"github.com/duersjefen/deploy-kit/internal/detect"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/fix"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [file]",
	Short: "Apply automatic fixes to a config file",
	Long:  "Scan one file (sst.config.ts by default), show the resulting changes, and with --apply write them back. Without --apply this is a preview.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("apply", false, "write fixes to disk instead of previewing")
	fixCmd.Flags().String("min-confidence", "", "lowest fix confidence to apply (low|medium|high)")
	fixCmd.Flags().Bool("interactive", false, "confirm each fix on the terminal")
}

func runFix(cmd *cobra.Command, args []string) error {
	path := "sst.config.ts"
	if len(args) == 1 {
		path = args[0]
	}
	apply, _ := cmd.Flags().GetBool("apply")
	interactive, _ := cmd.Flags().GetBool("interactive")

	root := projectRoot(cmd)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	minConf := cfg.MinConfidence()
	if cmd.Flags().Changed("min-confidence") {
		raw, _ := cmd.Flags().GetString("min-confidence")
		conf, ok := diag.ParseConfidence(raw)
		if !ok {
			return fmt.Errorf("--min-confidence must be low, medium, or high, got %q", raw)
		}
		minConf = conf
	}

	// Fixing always works from a fresh scan; cached results are never
	// allowed to produce edits.
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	f := fs.Get(id)
	res := detect.New(detect.Options{DisabledRules: cfg.Disabled()}).DetectFile(f, root)

	r := ui.NewRenderer(cmd.OutOrStdout(), useColor(cmd))
	opts := fix.Options{Apply: apply, MinConfidence: minConf}
	if interactive {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("--interactive needs a terminal on stdin")
		}
		opts.Prompt = terminalPrompt(cmd, r)
	}

	fixed, err := fix.Apply(f, res.Violations, opts)
	if err != nil {
		return err
	}
	if fixed.FixCount > 0 && !apply {
		r.Diff(fix.GenerateDiff(string(f.Content), fixed.FixedCode))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	r.FixReport(fixed)
	if !apply && fixed.FixCount > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "re-run with --apply to write these changes")
	}
	return nil
}

// terminalPrompt asks per fix, showing what would change.
func terminalPrompt(cmd *cobra.Command, r *ui.Renderer) func(diag.Violation, *diag.Fix) bool {
	reader := bufio.NewReader(os.Stdin)
	out := cmd.OutOrStdout()
	return func(v diag.Violation, fx *diag.Fix) bool {
		fmt.Fprintf(out, "%s line %d: %s\n", v.Code, v.Line, fx.Description)
		r.Diff(fmt.Sprintf("- %s\n+ %s\n", fx.OldCode, fx.NewCode))
		fmt.Fprint(out, "apply? [y/N] ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

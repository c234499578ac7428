package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duersjefen/deploy-kit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "deploykit",
	Short: "Deployment safety checks for sst.config.ts",
	Long:  "deploykit scans SST config files for misconfigurations that deploy cleanly and fail in production, and can apply the safe fixes itself.",
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("project-root", ".", "directory containing deploykit.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the output device.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func projectRoot(cmd *cobra.Command) string {
	root, _ := cmd.Root().PersistentFlags().GetString("project-root")
	if root == "" {
		return "."
	}
	return root
}

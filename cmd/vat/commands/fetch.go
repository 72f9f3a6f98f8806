package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vat/internal/app"
)

// RootEnvVar names the vat tree when --root is not given.
const RootEnvVar = "VAT_ROOT"

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [packages...]",
		Short: "Fetch the latest versions of packages",
		Long: "Fetch the latest upstream version of every enabled channel.\n" +
			"Without arguments every package below p/ is fetched.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			guarantee, _ := cmd.Flags().GetBool("guarantee")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			pretend, _ := cmd.Flags().GetBool("pretend")
			jobs, _ := cmd.Flags().GetInt("jobs")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if !cmd.Flags().Changed("root") {
				if env := os.Getenv(RootEnvVar); env != "" {
					root = env
				}
			}
			if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
				verbose = true
			}

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Root:       root,
				Guarantee:  guarantee,
				NoCache:    noCache,
				Pretend:    pretend,
				Verbose:    verbose,
				Jobs:       jobs,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("root", "C", ".", "Path to the vat tree (defaults to $VAT_ROOT, then the working directory)")
	cmd.Flags().BoolP("guarantee", "g", false, "Fetch every package regardless of its chance")
	cmd.Flags().BoolP("no-cache", "n", false, "Ask fetch scripts to bypass the cache")
	cmd.Flags().BoolP("pretend", "p", false, "Fetch without writing versions")
	cmd.Flags().IntP("jobs", "j", 0, "Number of packages fetched concurrently (default from vat.yaml or 2x CPUs)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, progress, linear, or tui")
	cmd.Flags().BoolP("verbose", "v", false, "Show debug messages")
	return cmd
}

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/killallgit/jamjot-api/api/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display the build of this binary, the same payload GET / serves.

Example:
  jamjot-api version
  jamjot-api version --short
  jamjot-api version --json`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print the version payload as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Current()
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", info.Version)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "%s - %s\n\n", info.Name, info.Description)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Version:\tv%s\n", info.Version)
	fmt.Fprintf(w, "Commit:\t%s\n", info.Commit)
	fmt.Fprintf(w, "Built:\t%s\n", info.BuildTime)
	fmt.Fprintf(w, "Go:\t%s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform:\t%s\n", info.Platform)
	return w.Flush()
}

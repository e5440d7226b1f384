package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boolex/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s v%s\n", version.Name, info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform())
	},
}

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Display project information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "-=- %s -=-\n", version.Title)
		fmt.Fprintf(out, "By: %s\n", version.Author)
		fmt.Fprintf(out, "Version: %s\n", version.Version)
		fmt.Fprintf(out, "License: %s\n", version.License)
		fmt.Fprintf(out, "Description: %s\n", version.Description)
		fmt.Fprintf(out, "Repository: %s\n", version.Repository)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(creditsCmd)
}

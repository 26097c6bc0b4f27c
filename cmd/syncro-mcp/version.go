package main

import (
	"fmt"

	"github.com/spf13/cobra"

	syncromcp "github.com/wyre-technology/syncro-mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of syncro-mcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("syncro-mcp version %s\n", syncromcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

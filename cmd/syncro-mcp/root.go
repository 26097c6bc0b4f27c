package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "syncro-mcp",
	Short: "syncro-mcp is an MCP server for the Syncro MSP platform",
	Long: `syncro-mcp exposes Syncro MSP (tickets, customers, contacts, assets,
invoices) to AI agents over the Model Context Protocol, with a navigable
tool surface that reveals one domain at a time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to an optional YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

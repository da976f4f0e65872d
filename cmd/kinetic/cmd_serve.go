package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-studio-sub013/internal/catalog"
	"github.com/austencloud/tka-studio-sub013/internal/logging"
	mcpserver "github.com/austencloud/tka-studio-sub013/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	dbPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout. MCP clients connect via their
server config and call the pattern and catalog tools directly.

The server monitors for parent process death. When the client
disconnects or restarts, the server self-terminates to prevent zombie
processes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.dbPath, "db", catalog.DefaultDBPath, "Catalog DB path")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	store, err := openStore(serveFlags.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := mcpserver.NewServer(store)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting kinetic MCP server over stdio (parent watchdog active)",
		"db", serveFlags.dbPath)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

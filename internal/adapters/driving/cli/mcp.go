package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/mcp"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so assistants can list matches
and apply replaces.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

While the server runs, edits to config.toml are applied to the match cache
lifetime without a restart.

Examples:
  rebrand mcp serve
  rebrand mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "rebrand": {
        "command": "/path/to/rebrand",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Terms:   termService,
		Matches: matchService,
		Replace: replaceService,
		Admin:   adminService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	startConfigWatcher(ctx)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// startConfigWatcher reloads settings when config.toml changes and pushes
// the new cache lifetime into the running cache.
func startConfigWatcher(ctx context.Context) {
	if configStore == nil || settingsService == nil || matchCache == nil {
		return
	}
	w, err := file.NewWatcher(configStore, reloadCacheTTL)
	if err != nil {
		logger.Warn("config watch disabled: %v", err)
		return
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Warn("config watch stopped: %v", err)
		}
	}()
}

func reloadCacheTTL() {
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reloading settings: %v", err)
		return
	}
	matchCache.SetTTL(settings.Cache.TTL)
	logger.Info("cache ttl now %s", settings.Cache.TTL)
}

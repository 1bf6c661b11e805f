package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name      string `toml:"name"`
	Port      string `toml:"port"`
	PortalURL string `toml:"portal_url"`
}

// Config holds all garuda-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Logging common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name:      "Garuda-MCP",
			Port:      "4251",
			PortalURL: "http://localhost:4250",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/garuda-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	if url := os.Getenv("GARUDA_PORTAL_URL"); url != "" {
		cfg.Server.PortalURL = url
	}
	if port := os.Getenv("GARUDA_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}

	return cfg
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "garuda-mcp.toml", "Path to config file")
	flag.Parse()

	cfg := loadConfig(*configFile)

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	proxy := NewPortalProxy(cfg.Server.PortalURL, logger)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register all MCP tools
	registerTools(mcpServer, proxy)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/rtzll/tubequiz/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing quiz generation",
	Long: `Run a Model Context Protocol (MCP) server that exposes tubequiz as tools.

The MCP server provides two tools:
- generate_quiz: Write quiz questions about a YouTube video
- get_youtube_transcript: Fetch the built-in captions of a video

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)

Set mcp_log = true in config.toml to log tool calls to mcp.log in the cache directory.`,
	Example: `  # Run MCP server with stdio transport (e.g. for Claude Desktop)
  tubequiz mcp

  # Run MCP server with HTTP transport on port 8080
  tubequiz mcp --transport=http --port=8080

  # Set up Claude Desktop integration
  tubequiz mcp setup-claude`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// stdio carries the protocol, keep status output off it
		config.Verbose = false
		config.Quiet = true
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		log := internal.NewLoggerOrNop(config, internal.LogMCP)
		defer func() { _ = log.Sync() }()

		app := internal.NewApp(config, internal.WithLogger(log))
		mcpServer := internal.NewMCPServer(app, version)

		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

// setupClaudeCmd represents the setup-claude subcommand
var setupClaudeCmd = &cobra.Command{
	Use:   "setup-claude",
	Short: "Configure Claude Desktop to use the tubequiz MCP server",
	Long: `Automatically configure Claude Desktop to use tubequiz as an MCP server.

This command will:
- Detect Claude Desktop installation and config location
- Add tubequiz MCP server configuration to claude_desktop_config.json
- Preserve existing MCP server configurations
- Set appropriate XDG environment variables for the current platform`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setupClaudeDesktop()
	},
}

// ClaudeDesktopConfig represents the claude_desktop_config.json structure
type ClaudeDesktopConfig struct {
	MCPServers map[string]MCPServerConfig `json:"mcpServers"`
}

// MCPServerConfig represents an individual MCP server configuration
type MCPServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// setupClaudeDesktop implements the setup-claude subcommand
func setupClaudeDesktop() error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("getting executable path: %w", err)
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	configPath, err := getClaudeDesktopConfigPath()
	if err != nil {
		return fmt.Errorf("getting Claude Desktop config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config for Claude Desktop not found at %s", configPath)
	}

	var desktopConfig ClaudeDesktopConfig
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading existing config: %w", err)
	}

	if err := json.Unmarshal(data, &desktopConfig); err != nil {
		return fmt.Errorf("parsing existing config: %w", err)
	}

	if desktopConfig.MCPServers == nil {
		desktopConfig.MCPServers = make(map[string]MCPServerConfig)
	}

	// Claude Desktop starts servers with a minimal environment
	env := map[string]string{
		"XDG_CONFIG_HOME": xdg.ConfigHome,
		"XDG_CACHE_HOME":  xdg.CacheHome,
	}
	if config.APIKey != "" {
		env["TUBEQUIZ_API_KEY"] = config.APIKey
	}

	desktopConfig.MCPServers["tubequiz"] = MCPServerConfig{
		Command: execPath,
		Args:    []string{"mcp"},
		Env:     env,
	}

	data, err = json.MarshalIndent(desktopConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Successfully configured Claude Desktop MCP server\n")
	fmt.Printf("Restart Claude Desktop to use the tubequiz MCP server\n")

	return nil
}

// getClaudeDesktopConfigPath returns the platform-specific config path for Claude Desktop
func getClaudeDesktopConfigPath() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil

	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil

	case "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, ".config", "Claude", "claude_desktop_config.json"), nil

	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol (stdio or http)")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport (only used with --transport=http)")
	mcpCmd.AddCommand(setupClaudeCmd)
	rootCmd.AddCommand(mcpCmd)
}

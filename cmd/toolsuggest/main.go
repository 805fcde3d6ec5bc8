/*
Package main implements the toolsuggest server and commandline interface.

toolsuggest is a lexical, multi-intent tool-suggestion engine: given free
text it tokenizes, segments it into one or more intents, and ranks catalog
tools against each via a field-aware inverted index. It can operate as a
MessagePack IPC server for editor/client integrations or as a standalone
REPL for interactive testing.

# Server Mode

The server reads feed/submit/reset/add_tools/remove_tool requests from
stdin and writes ranked suggestions to stdout.

# REPL Mode

The REPL provides an interactive shell for exercising the engine from a
terminal, useful for debugging catalog and ranking behavior.

# Config

Runtime configuration is managed via a config.toml file with engine,
server, and cli sections. A default configuration is created automatically
if one does not exist.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/toolsuggest/internal/cli"
	"github.com/bastiangx/toolsuggest/internal/logger"
	"github.com/bastiangx/toolsuggest/internal/utils"
	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/bastiangx/toolsuggest/pkg/config"
	"github.com/bastiangx/toolsuggest/pkg/server"
	"github.com/bastiangx/toolsuggest/pkg/suggest"
)

const (
	version = "0.1.0-beta"
	appName = "toolsuggest"
	ghURL   = "https://github.com/bastiangx/toolsuggest"
)

var (
	configFile  string
	catalogFile string
	verbose     bool
	sessionID   string
)

func main() {
	sigHandler()

	root := &cobra.Command{
		Use:     appName,
		Short:   "Lexical, multi-intent tool-suggestion engine",
		Version: version,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to custom config.toml file")
	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "path to a TOML catalog file ([[tool]] tables)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "toggle verbose logging")

	root.AddCommand(serveCmd(), replCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// sigHandler exits normally on SIGINT/SIGTERM.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nexiting...\n")
		os.Exit(0)
	}()
}

func setupLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func loadEngine() (*suggest.Engine, *config.Config, string, error) {
	resolvedConfigPath := configFile
	if resolvedConfigPath == "" {
		pr, err := utils.NewPathResolver()
		if err == nil {
			if p, err := pr.GetConfigPath("config.toml"); err == nil {
				resolvedConfigPath = p
			}
		}
		if resolvedConfigPath == "" {
			resolvedConfigPath = "config.toml"
		}
	}

	cfg, err := config.InitConfig(resolvedConfigPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, "", err
	}

	var tools []catalog.ToolSpec
	if catalogFile != "" {
		tools, err = catalog.LoadFile(catalogFile)
		if err != nil {
			return nil, nil, "", err
		}
	} else {
		log.Warn("no --catalog specified, starting with an empty tool catalog")
	}

	eng, err := suggest.NewEngine(tools, cfg.EngineConfig(), logger.Default(appName))
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to init engine: %w", err)
	}
	return eng, cfg, resolvedConfigPath, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MessagePack IPC server over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			eng, _, configPath, err := loadEngine()
			if err != nil {
				return err
			}
			log.Debugf("using config file: %s", configPath)

			showStartupInfo()
			srv := server.NewServer(eng)
			return srv.Start()
		},
	}
}

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive REPL against the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			log.SetReportTimestamp(false)
			eng, cfg, _, err := loadEngine()
			if err != nil {
				return err
			}
			session := sessionID
			if session == "" {
				session = cfg.CLI.DefaultSessionID
			}
			return cli.NewInputHandler(eng, session).Start()
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id to use for the REPL (defaults to config cli.default_session_id)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			out := log.NewWithOptions(os.Stderr, log.Options{ReportCaller: false, ReportTimestamp: false})
			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			out.SetStyles(styles)

			out.Print("")
			out.Print("[toolsuggest] ranks tools from free text, lexically")
			out.Print("", "version", version)
			out.Print("")
			out.Print("Find out more at", "gh", ghURL)
		},
	}
}

func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=============")
	println(" toolsuggest ")
	println("=============")
	log.Infof("version: %s", version)
	log.Infof("process id: [ %d ]", pid)
	log.Info("status: ready")
	println("=============")
	println("press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

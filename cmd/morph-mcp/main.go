package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/morph-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	debug := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v", "version":
			fmt.Printf("morph-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("morph-tools-mcp - MCP server for morphological image analysis")
			fmt.Println()
			fmt.Println("Usage: morph-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --debug          Verbose text logging on stderr")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MORPH_MCP_LOG_LEVEL=debug|trace    Log level without --debug")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		case "--debug":
			debug = true
		}
	}

	// stdout carries the MCP protocol; all logging goes to stderr.
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	if lvl, err := logrus.ParseLevel(os.Getenv("MORPH_MCP_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
	if debug {
		log.SetFormatter(&logrus.TextFormatter{})
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("starting morph-tools-mcp")

	srv := server.New(log)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

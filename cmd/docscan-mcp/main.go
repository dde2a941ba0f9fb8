package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pagefold/docscan-mcp/internal/config"
	"github.com/pagefold/docscan-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("docscan-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("docscan-mcp - MCP server for document scanning")
			fmt.Println()
			fmt.Println("Usage: docscan-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from a .env file):")
			fmt.Println("  DOCSCAN_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  DOCSCAN_LOW_THRESHOLD=75    Edge detector low hysteresis threshold")
			fmt.Println("  DOCSCAN_HIGH_THRESHOLD=200  Edge detector high hysteresis threshold")
			fmt.Println("  DOCSCAN_MIN_AREA=1000       Smallest contour area kept as a candidate")
			fmt.Println("  DOCSCAN_MAX_DIMENSION=800   Longest side of the detection working image")
			fmt.Println("  DOCSCAN_WORKERS=0           Worker pool size, 0 = one per processor")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.LogLevel == "debug" {
		log.Printf("Document Scan MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

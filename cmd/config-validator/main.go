package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/orgoj/daylog/internal/config"
)

func main() {
	// Parse command line flags
	flag.Parse()

	// Get config path from arguments
	if len(flag.Args()) < 1 {
		fmt.Println("Error: Config file path is required")
		fmt.Println("Usage: config-validator <config-file>")
		os.Exit(1)
	}
	configPath := flag.Args()[0]

	// Load and validate configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration is valid! Logs root: %s, logger rules: %d\n", cfg.LogsRoot, len(cfg.Loggers))
}

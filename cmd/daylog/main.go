package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgoj/daylog/internal/config"
	"github.com/orgoj/daylog/internal/logger"
	"github.com/orgoj/daylog/internal/reader"
	"github.com/orgoj/daylog/internal/version"
)

func main() {
	// --- Configuration --- //
	configPath := flag.String("config", "", "Path to the configuration file (optional)")
	testConfigShort := flag.Bool("t", false, "Test configuration and exit (nginx style)")
	testConfigLong := flag.Bool("test", false, "Test configuration and exit (nginx style)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	// Display version information if requested
	if *showVersion {
		fmt.Println(version.VersionInfo())
		os.Exit(0)
	}

	cfg := config.DefaultConfig()
	// The demo wants full output when no config file is given.
	cfg.Loggers = []config.LoggerRule{{Pattern: "*", Level: "DEBUG", Text: true, JSON: true}}
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("[CRITICAL] Failed to load configuration from '%s': %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *testConfigShort || *testConfigLong {
		// Validation already happened in LoadConfig
		fmt.Printf("Configuration '%s' is valid.\n", *configPath)
		os.Exit(0)
	}

	// Initialize application logger
	appLogger := logger.GetAppLogger()
	if err := appLogger.SetLogLevelFromString(cfg.AppLog.Level); err != nil {
		fmt.Printf("[WARN] Invalid log level '%s', using default: %v\n", cfg.AppLog.Level, err)
	}
	appLogger.SetFile(cfg.AppLog.File, cfg.AppLog.MaxSizeMB, cfg.AppLog.MaxBackups, cfg.AppLog.Compress)

	// --- Logger Registry --- //
	registry, err := logger.NewRegistry(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize logger registry: %v", err)
	}
	defer registry.CloseAll()

	log := registry.Get("app")

	// --- Demo scenarios --- //
	for n := 0; n <= 10; n++ {
		log.Debug("Current number: %d", n)
	}

	processNumbers(log, []int{0, 1, -1, 3, 10}, 5)
	demoNestedFaults(log)

	// Read back every NDJSON day file under the logs root.
	pattern := filepath.Join(cfg.LogsRoot, "*", "*"+logger.JSONSuffix)
	files, err := filepath.Glob(pattern)
	if err != nil {
		appLogger.Fatal("Failed to list NDJSON files under '%s': %v", cfg.LogsRoot, err)
	}

	total := 0
	for _, file := range files {
		records, err := reader.ToList(file)
		if err != nil {
			appLogger.Fatal("Failed to read log file back: %v", err)
		}
		total += len(records)
	}

	fmt.Printf("NDJSON files found: %v\n", files)
	fmt.Printf("Total records read back: %d\n", total)
}

// processNumbers runs each number through a validity check and logs the
// outcome, demonstrating fault capture for the two domain errors.
func processNumbers(log *logger.Logger, numbers []int, maxValue int) {
	for _, n := range numbers {
		log.Debug("Start processing number: %d", n)
		if err := checkNumber(n, maxValue); err != nil {
			log.ErrorErr(err, "Failed to process number %d", n)
		} else {
			log.Info("Number %d processed successfully", n)
		}
		log.Debug("Finished processing number: %d", n)
	}
}

func checkNumber(n, maxValue int) error {
	if n < 0 {
		return &negativeNumberError{value: n}
	}
	if n > maxValue {
		return &tooBigNumberError{value: n, limit: maxValue}
	}
	return nil
}

// demoNestedFaults shows an inner fault being logged, wrapped into an
// application error and logged again at the top level.
func demoNestedFaults(log *logger.Logger) {
	inner := func() error {
		err := &negativeNumberError{value: -1}
		log.WarnErr(err, "Caught error in inner function")
		return &appError{msg: "inner function failed", cause: err}
	}

	if err := inner(); err != nil {
		log.FatalErr(err, "Top-level application error")
	}
}

// Demo error types

type appError struct {
	msg   string
	cause error
}

func (e *appError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *appError) Unwrap() error { return e.cause }

type negativeNumberError struct {
	value int
}

func (e *negativeNumberError) Error() string {
	return fmt.Sprintf("negative number is not allowed: %d", e.value)
}

type tooBigNumberError struct {
	value int
	limit int
}

func (e *tooBigNumberError) Error() string {
	return fmt.Sprintf("number %d exceeds the allowed maximum %d", e.value, e.limit)
}

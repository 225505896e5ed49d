package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logcall "github.com/llskyhi/log-call"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		handleConvert()
	case "validate":
		handleValidate()
	case "show":
		handleShow()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("logcall-config - Configuration tool for logcall")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  logcall-config convert <input> <output>  - Convert between formats")
	fmt.Println("  logcall-config validate <file>           - Validate configuration")
	fmt.Println("  logcall-config show <file>               - Show effective settings")
	fmt.Println()
	fmt.Println("Supported formats: .yaml, .yml, .json")
}

func handleConvert() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: logcall-config convert <input> <output>")
		os.Exit(1)
	}

	cfg, err := logcall.NewConfigLoader().LoadFile(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := saveConfig(cfg, os.Args[3]); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s -> %s\n", os.Args[2], os.Args[3])
}

func handleValidate() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: logcall-config validate <file>")
		os.Exit(1)
	}

	cfg, err := logcall.NewConfigLoader().LoadFile(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s is valid\n", os.Args[2])
}

func handleShow() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: logcall-config show <file>")
		os.Exit(1)
	}

	cfg, err := logcall.NewConfigLoader().LoadFile(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Level
	if level == "" {
		level = "debug (default)"
	}
	fmt.Printf("Level:       %s\n", level)
	fmt.Printf("Caller info: %v\n", cfg.Caller == nil || *cfg.Caller)
	if cfg.ArgLimit > 0 {
		fmt.Printf("Arg limit:   %d\n", cfg.ArgLimit)
	}
	if cfg.StackLimit > 0 {
		fmt.Printf("Stack limit: %d\n", cfg.StackLimit)
	}
	if cfg.Console != nil {
		fmt.Printf("Console:     enabled (color=%v)\n", cfg.Console.Color)
	}
	if cfg.File != nil {
		fmt.Printf("File:        %s (max %d MB, %d backups)\n",
			cfg.File.Path, cfg.File.MaxSizeMB, cfg.File.MaxBackups)
	}
}

func saveConfig(cfg *logcall.Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = cfg.ToYAML()
	case ".json":
		data, err = cfg.ToJSON()
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"DrawShape/internal/config"
	"DrawShape/internal/ui"
)

const configName = "drawshape.toml"

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file (default: user config dir)")
	flag.Parse()

	path, optional := *configPath, false
	if path == "" {
		path, optional = defaultConfigPath(), true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	log.Printf("Settings from %s", describe(path))

	ui.RunApp(cfg)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "drawshape", configName)
}

func describe(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}

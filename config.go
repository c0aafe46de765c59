package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PARALLINES"

// Environment keys come from the split field names (PARALLINES_NUM_LINES).
// An envconfig tag would also match the bare name, e.g. the shell's LINES.
type Config struct {
	SaveDirectory string  `split_words:"true"`
	Confirmations bool    `split_words:"true"`
	NumLines      int     `split_words:"true"`
	NumPoints     int     `split_words:"true"`
	Spacing       int     `split_words:"true"`
	HitRadius     float64 `split_words:"true"`
	PNGCaption    bool    `split_words:"true"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		NumLines:      defaultNumLines,
		NumPoints:     defaultNumPoints,
		Spacing:       defaultSpacing,
		HitRadius:     defaultHitRadius,
	}
}

// loadConfig reads ~/.parallinesrc and then applies PARALLINES_* environment
// overrides on top of it.
func loadConfig() (*Config, error) {
	path := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(homeDir, ".parallinesrc")
	}
	return loadConfigFrom(path)
}

func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()
	if path != "" {
		readRC(config, path)
	}
	if err := envconfig.Process(envPrefix, config); err != nil {
		return config, fmt.Errorf("environment: %w", err)
	}
	return config, nil
}

// readRC applies every recognised key = value line of the file. A missing
// file or a malformed value leaves the current setting in place.
func readRC(config *Config, path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "lines", "numlines", "num_lines":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				config.NumLines = n
			}
		case "points", "controlpoints", "control_points", "numcontrolpoints":
			if n, err := strconv.Atoi(value); err == nil && n >= 2 {
				config.NumPoints = n
			}
		case "spacing":
			if n, err := strconv.Atoi(value); err == nil {
				config.Spacing = n
			}
		case "hitradius", "hit_radius":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.HitRadius = f
			}
		case "pngcaption", "png_caption":
			config.PNGCaption = strings.ToLower(value) == "true"
		}
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		L().Warn("config.save_directory", "path", c.SaveDirectory, "error", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}

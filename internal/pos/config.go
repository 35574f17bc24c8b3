package pos

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the CLI configuration
type Config struct {
	Brand       string // Branding shown in the TUI (default: "BusyPOS")
	CatalogPath string // JSON item catalog (default: built-in sample catalog)
	LedgerPath  string // JSON-lines ledger file for committed invoices
	LogPath     string // Log file path
}

// LoadConfig reads the .busypos-config file. Every key is optional; a
// missing config file just yields the defaults.
func LoadConfig() (*Config, error) {
	// Find config file in various locations
	configPaths := []string{
		".busypos-config",
		"../.busypos-config",
		filepath.Join(filepath.Dir(os.Args[0]), ".busypos-config"),
		filepath.Join(filepath.Dir(os.Args[0]), "..", ".busypos-config"),
	}

	config := &Config{
		Brand:      "BusyPOS",
		LedgerPath: "busypos-ledger.jsonl",
		LogPath:    "busypos.log",
	}

	var configPath string
	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			configPath = p
			break
		}
	}

	if configPath == "" {
		return config, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open config: %w", err)
	}
	defer file.Close()

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
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"'")

		switch key {
		case "POS_BRAND":
			if value != "" {
				config.Brand = value
			}
		case "POS_CATALOG":
			config.CatalogPath = value
		case "POS_LEDGER":
			if value != "" {
				config.LedgerPath = value
			}
		case "POS_LOG":
			if value != "" {
				config.LogPath = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return config, nil
}

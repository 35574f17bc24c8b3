package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"busypos/internal/pos"
)

func main() {
	// No arguments or "tui" command -> launch TUI
	if len(os.Args) < 2 || os.Args[1] == "tui" {
		config, catalog, store, log, err := setup()
		if err != nil {
			fmt.Printf("%sError: %s%s\n", pos.Red, err, pos.Reset)
			os.Exit(1)
		}
		if err := pos.RunTUI(config, catalog, store, log); err != nil {
			fmt.Printf("%sError: %s%s\n", pos.Red, err, pos.Reset)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cmd := os.Args[1]

	// Help doesn't need config
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		os.Exit(0)
	}

	// Version
	if cmd == "version" || cmd == "-v" || cmd == "--version" {
		fmt.Printf("BusyPOS v%s (%s)\n", pos.Version, pos.Year)
		os.Exit(0)
	}

	_, catalog, store, _, err := setup()
	if err != nil {
		fmt.Printf("%sError: %s%s\n", pos.Red, err, pos.Reset)
		os.Exit(1)
	}

	var cmdErr error
	switch cmd {
	case "catalog":
		cmdErr = pos.CmdCatalog(catalog, os.Args[2:])
	case "ledger":
		cmdErr = pos.CmdLedger(store, os.Args[2:])
	default:
		fmt.Printf("%sUnknown command: %s%s\n", pos.Red, cmd, pos.Reset)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Printf("%sError: %s%s\n", pos.Red, cmdErr, pos.Reset)
		os.Exit(1)
	}
}

func setup() (*pos.Config, *pos.Catalog, *pos.LedgerStore, zerolog.Logger, error) {
	config, err := pos.LoadConfig()
	if err != nil {
		return nil, nil, nil, zerolog.Nop(), err
	}

	catalog := pos.SampleCatalog()
	if config.CatalogPath != "" {
		catalog, err = pos.LoadCatalog(config.CatalogPath)
		if err != nil {
			return nil, nil, nil, zerolog.Nop(), err
		}
	}

	logFile, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, nil, zerolog.Nop(), fmt.Errorf("cannot open log file: %w", err)
	}
	log := zerolog.New(logFile).With().Timestamp().Logger()

	store := pos.NewLedgerStore(config.LedgerPath, log)
	return config, catalog, store, log, nil
}

func printUsage() {
	fmt.Printf(`%sBusyPOS%s - keyboard-first point of sale

Usage: busypos <command> [args...]

%sCommands:%s

  %stui%s                 Launch the interactive TUI (default)
  %scatalog [query]%s     List catalog items, optionally filtered
  %sledger [n]%s          Print receipts for the n most recent invoices
  %sversion%s             Show version information

%sConfig:%s
  Reads .busypos-config (key=value) from the working directory or next
  to the binary. Keys: POS_BRAND, POS_CATALOG, POS_LEDGER, POS_LOG.
  All keys are optional; without a config file the built-in sample
  catalog is used.

%sExamples:%s
  busypos
  busypos catalog wireless
  busypos ledger 5

`,
		pos.Blue, pos.Reset,
		pos.Yellow, pos.Reset,
		pos.Green, pos.Reset, pos.Green, pos.Reset,
		pos.Green, pos.Reset, pos.Green, pos.Reset,
		pos.Yellow, pos.Reset,
		pos.Yellow, pos.Reset,
	)
}

// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", "money_manager.json", "Path to the state document (JSON)")

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&rmAccountCmd{},
	&accountsCmd{},
	&addCmd{},
	&rmCmd{},
	&txCmd{},
	&emiCmd{},
	&rmEmiCmd{},
	&emisCmd{},
	&repayCmd{},
	&summaryCmd{},
	&presetCmd{},
	&rmPresetCmd{},
	&presetsCmd{},
	&themeCmd{},
	&exportCmd{},
	&importCmd{},
}

// LoadState reads the state document from the app state file. A missing file
// yields a fresh empty document.
func LoadState() (*moneymanager.State, error) {
	f, err := os.Open(*stateFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, state file does not exist, starting with an empty document instead")
		return moneymanager.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open state file %q: %w", *stateFile, err)
	}
	defer f.Close()

	s, err := moneymanager.DecodeState(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode state file %q: %w", *stateFile, err)
	}
	return s, nil
}

// SaveState persists the document to the app state file, but only when an
// operation actually changed it.
func SaveState(s *moneymanager.State) error {
	if !s.Dirty() {
		return nil
	}
	f, err := os.Create(*stateFile)
	if err != nil {
		return fmt.Errorf("could not write state file %q: %w", *stateFile, err)
	}
	defer f.Close()

	if err := moneymanager.EncodeState(f, s); err != nil {
		return fmt.Errorf("could not encode state file %q: %w", *stateFile, err)
	}
	s.MarkClean()
	return nil
}

// mutate runs op against the loaded document and persists the result. The
// document is saved only after op succeeds, so a rejected operation never
// touches the file.
func mutate(op func(*moneymanager.State) error) subcommands.ExitStatus {
	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := op(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveState(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

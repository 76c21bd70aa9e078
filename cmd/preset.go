package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	"github.com/SamuelAdmand/Money-Manager/renderer"
	"github.com/google/subcommands"
)

// --- Add Preset Command ---

type presetCmd struct {
	name string
	icon string
	typ  string
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "add a custom category shortcut" }
func (*presetCmd) Usage() string {
	return `mmg preset -n <name> [-i <icon>] [-t income|expense]
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Preset name (also the category label)")
	f.StringVar(&c.icon, "i", "pricetag-outline", "Icon token")
	f.StringVar(&c.typ, "t", "expense", "Preset type (income, expense)")
}

func (c *presetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	typ, err := moneymanager.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		s.AddCustomPreset(c.name, c.icon, typ)
		return nil
	})
}

// --- Remove Preset Command ---

type rmPresetCmd struct {
	name string
}

func (*rmPresetCmd) Name() string     { return "rm-preset" }
func (*rmPresetCmd) Synopsis() string { return "delete a custom category shortcut" }
func (*rmPresetCmd) Usage() string {
	return `mmg rm-preset -n <name>

  Deletes a custom preset. Built-in presets cannot be removed.
`
}

func (c *rmPresetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Preset name to delete")
}

func (c *rmPresetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(func(s *moneymanager.State) error {
		s.DeleteCustomPreset(c.name)
		return nil
	})
}

// --- List Presets Command ---

type presetsCmd struct {
	typ string
}

func (*presetsCmd) Name() string     { return "presets" }
func (*presetsCmd) Synopsis() string { return "list category shortcuts" }
func (*presetsCmd) Usage() string {
	return `mmg presets [-t income|expense]
`
}

func (c *presetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Preset type to list (income, expense)")
}

func (c *presetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := moneymanager.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PresetsMarkdown(s, typ))
	return subcommands.ExitSuccess
}

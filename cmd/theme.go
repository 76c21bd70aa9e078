package cmd

import (
	"context"
	"flag"
	"fmt"

	moneymanager "github.com/SamuelAdmand/Money-Manager"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string             { return "theme" }
func (*themeCmd) Synopsis() string         { return "toggle between light and dark theme" }
func (*themeCmd) Usage() string            { return "mmg theme\n" }
func (*themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(s *moneymanager.State) error {
		fmt.Printf("Theme is now %s\n", s.ToggleTheme())
		return nil
	})
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/util"
	"github.com/streamfront/streamfront/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"history file", "history", mo.Some("s"), where.History},
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"temporary files", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and generated files",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		names := lo.Map(targets, func(t clearTarget, _ int) string { return t.name })
		if !lo.Must(cmd.Flags().GetBool("yes")) && !confirm(fmt.Sprintf("Remove %s?", util.Quantify(len(names), "target", "targets"))) {
			return
		}

		for _, target := range targets {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Loading), target.name))
			err := util.Delete(target.location())
			e()
			if !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}

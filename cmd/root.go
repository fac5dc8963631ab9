// Package cmd implements the streamfront command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/constant"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/style"
	"github.com/streamfront/streamfront/surface"
	"github.com/streamfront/streamfront/util"
	"github.com/streamfront/streamfront/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	addPlayFlags(rootCmd)

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("frame", "F", "", "How preview and embed pages are shown: "+strings.Join(surface.Backends(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("frame", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return surface.Backends(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.FrameBackend, rootCmd.PersistentFlags().Lookup("frame")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember opened sources")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	// Scratch files of earlier runs.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Streamfront + " [url]",
	Short: "Play a video link with automatic fallback between playback methods",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Play a video link with automatic fallback between playback methods"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var url string
		if len(args) == 1 {
			url = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Video link",
				Help:    "Google Drive, YouTube, archive.org or a direct media file",
			}, &url, survey.WithValidator(survey.Required)))
		}

		play(cmd, strings.TrimSpace(url))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

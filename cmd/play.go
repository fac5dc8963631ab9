package cmd

import (
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/history"
	"github.com/streamfront/streamfront/inline"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
	"github.com/streamfront/streamfront/tui"
)

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Title shown while playing and kept in history")
	cmd.Flags().Bool("headless", false, "Skip the player screen and print notices and progress instead")
}

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

var playCmd = &cobra.Command{
	Use:     "play [url]",
	Short:   "Play a video link",
	Long:    "Classify the link and try each playback method in turn until one of them works.\nClosing the mpv window after the video loaded ends playback, also with --headless.",
	Example: "  streamfront play https://drive.google.com/file/d/FILE_ID/view --title \"Lecture 3\"",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		play(cmd, args[0])
	},
}

func play(cmd *cobra.Command, url string) {
	title := lo.Must(cmd.Flags().GetString("title"))
	headless := lo.Must(cmd.Flags().GetBool("headless"))

	d := source.Classify(url)
	if lo.ContainsBy(d.Candidates, func(c source.Candidate) bool { return c.Mode == source.Native }) {
		CheckDependencies()
	}

	var (
		outcome playback.Outcome
		err     error
	)

	if headless {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		d, outcome, err = inline.Play(ctx, &inline.Options{
			Out:   cmd.OutOrStdout(),
			URLs:  []string{url},
			Title: title,
		})
		cmd.Println()
	} else {
		var result tui.Result
		result, err = tui.Run(&tui.Options{
			URL:   url,
			Title: title,
			OnDismiss: func() {
				log.With(log.Fields{"url": url}).Info("remediation dismissed")
			},
		})
		if result.Descriptor.RawURL != "" {
			d = result.Descriptor
		}
		outcome = result.Outcome
	}

	if viper.GetBool(key.HistorySave) {
		if err := history.Save(d, title, outcome); err != nil {
			log.Warn(err)
		}
	}

	handleErr(err)
}

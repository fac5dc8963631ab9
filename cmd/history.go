package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/history"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/style"
	"github.com/streamfront/streamfront/util"
)

var errEmptyHistory = errors.New("history is empty")

// filterRecords keeps records whose title or url fuzzily matches query.
func filterRecords(records []*history.Record, query string) []*history.Record {
	if query == "" {
		return records
	}
	return lo.Filter(records, func(r *history.Record, _ int) bool {
		return fuzzy.MatchFold(query, r.Title) || fuzzy.MatchFold(query, r.URL)
	})
}

func loadRecords(cmd *cobra.Command) []*history.Record {
	records, err := history.List()
	handleErr(err)
	return filterRecords(records, lo.Must(cmd.Flags().GetString("filter")))
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().StringP("filter", "f", "", "Fuzzy filter by title or link")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously opened links",
	Run: func(cmd *cobra.Command, args []string) {
		records := loadRecords(cmd)
		if len(records) == 0 {
			handleErr(errEmptyHistory)
		}

		cmd.Printf("%s %s\n\n", icon.Get(icon.History), style.Bold(util.Quantify(len(records), "link", "links")))

		for _, r := range records {
			mark := style.Fg(color.Success)(icon.Get(icon.Success))
			if r.Outcome == playback.Failed.String() {
				mark = style.Fg(color.Danger)(icon.Get(icon.Fail))
			}
			cmd.Printf("%s %s %s\n", mark, style.Fg(color.Purple)(r.Kind.String()), r)
			cmd.Printf("  %s\n", style.Faint(fmt.Sprintf("opened %d times, last %s", r.Opens, r.LastOpened.Format("2006-01-02 15:04"))))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyReplayCmd)
	addPlayFlags(historyReplayCmd)
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Pick a remembered link and play it again",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records := loadRecords(cmd)
		if len(records) == 0 {
			handleErr(errEmptyHistory)
		}

		options := lo.Map(records, func(r *history.Record, _ int) string {
			return r.String()
		})

		var picked int
		handleErr(survey.AskOne(&survey.Select{
			Message: "Play again",
			Options: options,
		}, &picked))

		record := records[picked]
		if !cmd.Flags().Changed("title") {
			lo.Must0(cmd.Flags().Set("title", record.Title))
		}
		play(cmd, record.URL)
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [url]",
	Short: "Forget a single link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Remove(args[0]))
		cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), args[0])
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	historyClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every link",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) && !confirm("Forget every remembered link?") {
			return
		}

		handleErr(history.Clear())
		cmd.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func confirm(message string) bool {
	var ok bool
	handleErr(survey.AskOne(&survey.Confirm{Message: message}, &ok))
	return ok
}

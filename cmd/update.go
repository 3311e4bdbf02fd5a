package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/malq-cli/malq/mal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringP("status", "s", "", "watching, completed, on_hold, dropped or plan_to_watch")
	lo.Must0(updateCmd.RegisterFlagCompletionFunc("status", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.Statuses), cobra.ShellCompDirectiveNoFileComp
	}))
	updateCmd.Flags().Int("score", 0, "Score from 0 to 10")
	updateCmd.Flags().IntP("episodes", "e", 0, "Number of watched episodes")
	updateCmd.Flags().Bool("rewatching", false, "Mark the entry as being rewatched")
	updateCmd.Flags().Int("priority", 0, "Priority from 0 (low) to 2 (high)")
	updateCmd.Flags().Int("times-rewatched", 0, "Number of times rewatched")
	updateCmd.Flags().Int("rewatch-value", 0, "Rewatch value from 0 to 5")
	updateCmd.Flags().StringSlice("tags", []string{}, "Replace the tags")
	updateCmd.Flags().String("comments", "", "Replace the comments")
	updateCmd.Flags().String("start", "", "Start date as YYYY-MM-DD")
	updateCmd.Flags().String("finish", "", "Finish date as YYYY-MM-DD")
	addJSONFlag(updateCmd)
}

type dateSetter func(year int, month time.Month, day int) (*mal.UpdateAnime, error)

// setDate checks the layout here; the calendar is checked by the setter.
func setDate(value string, set dateSetter) error {
	if len(value) != len(time.DateOnly) || value[4] != '-' || value[7] != '-' {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", mal.ErrValidation, value)
	}

	year, errYear := strconv.Atoi(value[:4])
	month, errMonth := strconv.Atoi(value[5:7])
	day, errDay := strconv.Atoi(value[8:])
	if err := errors.Join(errYear, errMonth, errDay); err != nil {
		return fmt.Errorf("%w: date %q: %w", mal.ErrValidation, value, err)
	}

	_, err := set(year, time.Month(month), day)
	return err
}

var updateCmd = &cobra.Command{
	Use:     "update <id|url>",
	Short:   "Update an entry on your anime list",
	Example: "  malq update 6594 --status completed --score 9 --episodes 12",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := animeID(args[0])
		handleErr(err)

		client := mustClient()
		update := client.UpdateAnime(id)
		flags := cmd.Flags()

		if flags.Changed("status") {
			update.Status(parseEnumArg(lo.Must(flags.GetString("status")), mal.ParseStatus, mal.Statuses))
		}
		if flags.Changed("episodes") {
			update.NumWatchedEpisodes(lo.Must(flags.GetInt("episodes")))
		}
		if flags.Changed("rewatching") {
			update.IsRewatching(lo.Must(flags.GetBool("rewatching")))
		}
		if flags.Changed("times-rewatched") {
			update.NumTimesRewatched(lo.Must(flags.GetInt("times-rewatched")))
		}
		if flags.Changed("tags") {
			update.Tags(lo.Must(flags.GetStringSlice("tags"))...)
		}
		if flags.Changed("comments") {
			update.Comments(lo.Must(flags.GetString("comments")))
		}

		bounded := []struct {
			flag string
			set  func(int) (*mal.UpdateAnime, error)
		}{
			{"score", update.Score},
			{"priority", update.Priority},
			{"rewatch-value", update.RewatchValue},
		}
		for _, b := range bounded {
			if flags.Changed(b.flag) {
				_, err := b.set(lo.Must(flags.GetInt(b.flag)))
				handleErr(err)
			}
		}

		if flags.Changed("start") {
			handleErr(setDate(lo.Must(flags.GetString("start")), update.StartDate))
		}
		if flags.Changed("finish") {
			handleErr(setDate(lo.Must(flags.GetString("finish")), update.FinishDate))
		}

		if len(update.Fields()) == 0 {
			handleErr(errors.New("nothing to update, pass at least one flag"))
		}

		ctx, cancel := requestContext()
		defer cancel()

		status, err := update.Update(ctx)
		handleErr(err)

		if jsonFlag(cmd) {
			printJSON(status)
			return
		}

		success("Updated %d: %s", id, listStatusLine(status))
	},
}

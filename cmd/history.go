package cmd

import (
	"os"
	"strconv"

	"github.com/malq-cli/malq/query"
	"github.com/malq-cli/malq/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)

	historyCmd.Flags().BoolP("clear", "c", false, "Forget every remembered query")
	historyCmd.Flags().StringP("forget", "f", "", "Forget one remembered query")
	historyCmd.MarkFlagsMutuallyExclusive("clear", "forget")
	lo.Must0(historyCmd.RegisterFlagCompletionFunc("forget", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	addJSONFlag(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show remembered search queries",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(query.Clear())
			success("Search history cleared")
			return
		}

		if q := lo.Must(cmd.Flags().GetString("forget")); q != "" {
			ok, err := query.Forget(q)
			handleErr(err)
			if ok {
				success("Forgot %s", q)
			} else {
				success("%s was not remembered", q)
			}
			return
		}

		records := query.All()
		if jsonFlag(cmd) {
			printJSON(records)
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No remembered queries"))
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s\n", r.Query, style.Faint("×"+strconv.Itoa(r.Rank)))
		}
	},
}

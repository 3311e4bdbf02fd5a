package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/log"
	"github.com/malq-cli/malq/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	addPagingFlags(searchCmd, 0)
	addFieldsFlag(searchCmd)
	addJSONFlag(searchCmd)
	searchCmd.Flags().BoolP("closest", "c", false, "Only show the entry whose title is nearest to the query")
	searchCmd.Flags().Bool("no-history", false, "Do not remember this query")

	searchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search anime by title",
	Example: "  malq search katanagatari\n  malq search one piece --limit 3 --fields mean,num_episodes",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.TrimSpace(strings.Join(args, " "))
		if q == "" {
			handleErr(errors.New("query is empty"))
		}

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 {
			limit = viper.GetInt(key.SearchLimit)
		}
		offset := lo.Must(cmd.Flags().GetInt("offset"))

		client := mustClient()
		ctx, cancel := requestContext()
		defer cancel()

		result, err := client.Search(q, limit).Offset(offset).Fields(fieldsFlag(cmd)...).Run(ctx)
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("no-history")) {
			if err := query.Remember(q, 1); err != nil {
				log.Warn("cannot remember query: " + err.Error())
			}
		}

		if lo.Must(cmd.Flags().GetBool("closest")) {
			closest, ok := result.Closest(q).Get()
			if !ok {
				handleErr(errors.New("no results for " + q))
			}

			if jsonFlag(cmd) {
				printJSON(closest)
			} else {
				renderAnime(os.Stdout, closest)
			}
			return
		}

		if jsonFlag(cmd) {
			printJSON(result)
			return
		}

		renderResult(os.Stdout, result, offset)
	},
}

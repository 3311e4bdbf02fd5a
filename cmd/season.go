package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/malq-cli/malq/mal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seasonCmd)

	addPagingFlags(seasonCmd, 100)
	addFieldsFlag(seasonCmd)
	addJSONFlag(seasonCmd)
	seasonCmd.Flags().StringP("sort", "s", "", "Sort by anime_score or anime_num_list_users")
	lo.Must0(seasonCmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.SeasonSorts), cobra.ShellCompDirectiveNoFileComp
	}))

	seasonCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return enumStrings(mal.Seasons), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

var seasonCmd = &cobra.Command{
	Use:     "season [year] [season]",
	Short:   "List the anime of a broadcast season",
	Long:    "List the anime of a broadcast season. Without arguments the current season is listed.",
	Example: "  malq season 2010 winter --sort anime_score",
	Args:    cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		year, season := now.Year(), mal.SeasonOf(int(now.Month()))

		if len(args) >= 1 {
			parsed, err := strconv.Atoi(args[0])
			handleErr(err)
			year = parsed
		}
		if len(args) == 2 {
			season = parseEnumArg(args[1], mal.ParseSeason, mal.Seasons)
		}

		offset := lo.Must(cmd.Flags().GetInt("offset"))
		builder := mustClient().
			Seasonal(year, season).
			Fields(fieldsFlag(cmd)...).
			Limit(lo.Must(cmd.Flags().GetInt("limit"))).
			Offset(offset)

		if sort := lo.Must(cmd.Flags().GetString("sort")); sort != "" {
			builder.Sort(parseEnumArg(sort, mal.ParseSeasonSort, mal.SeasonSorts))
		}

		ctx, cancel := requestContext()
		defer cancel()

		result, err := builder.Run(ctx)
		handleErr(err)

		if jsonFlag(cmd) {
			printJSON(result)
			return
		}

		renderResult(os.Stdout, result, offset)
	},
}

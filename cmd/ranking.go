package cmd

import (
	"os"

	"github.com/malq-cli/malq/mal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rankingCmd)

	addPagingFlags(rankingCmd, 10)
	addFieldsFlag(rankingCmd)
	addJSONFlag(rankingCmd)

	rankingCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.RankingTypes), cobra.ShellCompDirectiveNoFileComp
	}
}

var rankingCmd = &cobra.Command{
	Use:     "ranking [type]",
	Short:   "List top anime",
	Long:    "List top anime. The type is one of all, airing, upcoming, tv, ova, movie, special, bypopularity and favorite.",
	Example: "  malq ranking airing --limit 5",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rankingType := mal.RankingAll
		if len(args) == 1 {
			rankingType = parseEnumArg(args[0], mal.ParseRankingType, mal.RankingTypes)
		}

		offset := lo.Must(cmd.Flags().GetInt("offset"))
		builder := mustClient().
			Ranking(rankingType, lo.Must(cmd.Flags().GetInt("limit"))).
			Offset(offset)

		fields := fieldsFlag(cmd)
		if len(fields) == 0 {
			fields = []mal.Field{mal.FieldMediaType, mal.FieldMean}
		}
		builder.Fields(fields...)

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

package cmd

import (
	"os"

	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/mal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(listCmd)

	addPagingFlags(listCmd, 100)
	addFieldsFlag(listCmd)
	addJSONFlag(listCmd)

	listCmd.Flags().StringP("status", "s", "", "Only entries with this status")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("status", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.Statuses), cobra.ShellCompDirectiveNoFileComp
	}))

	listCmd.Flags().String("sort", "", "Sort by list_score, list_updated_at, anime_title, anime_start_date or anime_id")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.Sorts), cobra.ShellCompDirectiveNoFileComp
	}))

	listCmd.Flags().BoolP("details", "d", true, "Request rewatch, priority, tags, comments and dates")
	lo.Must0(viper.BindPFlag(key.ListIncludeDetails, listCmd.Flags().Lookup("details")))
}

var listCmd = &cobra.Command{
	Use:     "list [username]",
	Short:   "Show a user's anime list",
	Long:    "Show a user's anime list. Without a username the logged in user's list (@me) is shown.",
	Example: "  malq list --status watching\n  malq list someone --sort list_score --limit 20",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := "@me"
		if len(args) == 1 {
			username = args[0]
		}

		client := mustClient()
		if username == "@me" && !client.Credentials().Authenticated() {
			handleErr(mal.ErrNotAuthenticated)
		}

		offset := lo.Must(cmd.Flags().GetInt("offset"))
		builder := client.
			UserList(username).
			Fields(fieldsFlag(cmd)...).
			Limit(lo.Must(cmd.Flags().GetInt("limit"))).
			Offset(offset)

		if status := lo.Must(cmd.Flags().GetString("status")); status != "" {
			builder.Status(parseEnumArg(status, mal.ParseStatus, mal.Statuses))
		}
		if sort := lo.Must(cmd.Flags().GetString("sort")); sort != "" {
			builder.Sort(parseEnumArg(sort, mal.ParseSort, mal.Sorts))
		}
		if viper.GetBool(key.ListIncludeDetails) {
			builder.WithAllListStatusDetails()
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

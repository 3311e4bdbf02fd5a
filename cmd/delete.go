package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id|url>",
	Short:   "Remove an entry from your anime list",
	Aliases: []string{"remove"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := animeID(args[0])
		handleErr(err)

		if !confirm(fmt.Sprintf("Remove anime %d from your list?", id), lo.Must(cmd.Flags().GetBool("yes"))) {
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		handleErr(mustClient().DeleteAnime(ctx, id))
		success("Removed %d from your list", id)
	},
}

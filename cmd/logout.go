package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirm asks a yes/no question unless skip is set.
func confirm(message string, skip bool) bool {
	if skip {
		return true
	}

	var response bool
	handleErr(survey.AskOne(&survey.Confirm{Message: message, Default: false}, &response))
	return response
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved MyAnimeList token",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := newStore()
		handleErr(err)

		if !store.Authenticated() {
			success("Not logged in")
			return
		}

		if !confirm("Remove the saved token from "+store.Location()+"?", lo.Must(cmd.Flags().GetBool("yes"))) {
			return
		}

		handleErr(store.Clear())
		success("Logged out")
	},
}

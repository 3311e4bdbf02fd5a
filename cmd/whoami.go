package cmd

import (
	"os"

	"github.com/malq-cli/malq/color"
	"github.com/malq-cli/malq/icon"
	"github.com/malq-cli/malq/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.SetOut(os.Stdout)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show how requests are authorized",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := newStore()
		handleErr(err)

		label := style.New().Bold(true).Foreground(color.HiPurple).Render

		switch {
		case store.Authenticated():
			cmd.Printf("%s %s\n", icon.Get(icon.Unlock), label("Bearer token"))
			cmd.Println(style.Faint("stored in " + store.Location()))
		case store.ClientID() != "":
			cmd.Printf("%s %s\n", icon.Get(icon.Lock), label("Client id only"))
			cmd.Println(style.Faint("run login to update your list"))
		default:
			cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), label("No credentials"))
			cmd.Println(style.Faint("set mal.client_id or run login"))
		}
	},
}

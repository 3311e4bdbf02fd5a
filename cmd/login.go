package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/malq-cli/malq/color"
	"github.com/malq-cli/malq/config"
	"github.com/malq-cli/malq/icon"
	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/mal"
	"github.com/malq-cli/malq/open"
	"github.com/malq-cli/malq/style"
	"github.com/malq-cli/malq/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().Bool("no-browser", false, "Print the authorization URL without opening the browser")
	loginCmd.Flags().Duration("timeout", 0, "How long to wait for the browser redirect (default from auth.timeout)")
	loginCmd.Flags().String("method", "", "PKCE challenge method, plain or S256 (default from auth.challenge_method)")
	lo.Must0(loginCmd.RegisterFlagCompletionFunc("method", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(mal.ChallengePlain), string(mal.ChallengeS256)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// loginTimeout is --timeout, else auth.timeout. Zero or less falls back to 120 seconds.
func loginTimeout(cmd *cobra.Command) time.Duration {
	timeout := time.Duration(viper.GetInt(key.AuthTimeout)) * time.Second
	if cmd.Flags().Changed("timeout") {
		timeout = lo.Must(cmd.Flags().GetDuration("timeout"))
	}
	return positiveOr(timeout, 120*time.Second)
}

// promptClientID asks for a client id and saves it to the config file.
func promptClientID() error {
	input := survey.Input{
		Message: "MyAnimeList client id is not set. Please enter it:",
		Help:    "Create an API client at https://myanimelist.net/apiconfig",
	}

	var response string
	if err := survey.AskOne(&input, &response); err != nil {
		return err
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return mal.ErrNoClientID
	}

	viper.Set(key.MalClientID, response)
	return config.Write()
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize malq with your MyAnimeList account",
	Long: `Authorize malq with your MyAnimeList account using OAuth2 with PKCE.
A local listener receives the browser redirect, the code is exchanged for a token and the token is saved.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := mustClient()

		if client.Credentials().ClientID() == "" {
			handleErr(promptClientID())
			client = mustClient()
		}

		method := viper.GetString(key.AuthChallengeMethod)
		if cmd.Flags().Changed("method") {
			method = lo.Must(cmd.Flags().GetString("method"))
		}
		challenge, err := mal.ParseChallengeMethod(method)
		handleErr(err)

		timeout := loginTimeout(cmd)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		openBrowser := viper.GetBool(key.AuthOpenBrowser) && !lo.Must(cmd.Flags().GetBool("no-browser"))

		err = tui.Wait(ctx, "Waiting for authorization", func(ctx context.Context, println tui.Printer) error {
			options := mal.LoginOptions{
				Addr:        viper.GetString(key.AuthListenAddress),
				RedirectURI: viper.GetString(key.AuthRedirectURI),
				Method:      challenge,
				OnURL: func(authURL string) {
					println(fmt.Sprintf("%s Open this URL to authorize malq:\n%s", icon.Get(icon.Lock), style.Fg(color.Cyan)(authURL)))
				},
			}
			if openBrowser {
				options.OpenBrowser = open.Browser
			}

			return client.Login(ctx, options)
		})

		if errors.Is(err, mal.ErrAuthorizationTimeout) {
			handleErr(fmt.Errorf("no authorization within %s, run login again", timeout))
		}
		handleErr(err)

		success("Logged in, token saved to %s", style.Fg(color.Purple)(client.Credentials().Location()))
	},
}

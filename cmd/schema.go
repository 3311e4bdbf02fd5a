package cmd

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/malq-cli/malq/mal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaTargets are the JSON outputs a schema can be generated for.
var schemaTargets = map[string]any{
	"anime":       &mal.Anime{},
	"list-status": &mal.ListStatus{},
	"search":      &mal.SearchResult{},
}

var schemaCmd = &cobra.Command{
	Use:       "schema [anime|list-status|search]",
	Short:     "Print the JSON schema of the --json outputs",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"anime", "list-status", "search"},
	Run: func(cmd *cobra.Command, args []string) {
		target := "anime"
		if len(args) == 1 {
			target = args[0]
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		printJSON(reflector.Reflect(schemaTargets[target]))
	},
}

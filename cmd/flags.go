package cmd

import (
	"context"
	"fmt"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/malq-cli/malq/color"
	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/mal"
	"github.com/malq-cli/malq/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

func addFieldsFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("fields", "f", []string{}, "Extra fields to request (e.g., mean,num_episodes)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("fields", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(mal.AllFields), cobra.ShellCompDirectiveNoFileComp
	}))
}

func addPagingFlags(cmd *cobra.Command, limit int) {
	cmd.Flags().IntP("limit", "l", limit, "Maximum number of entries")
	cmd.Flags().IntP("offset", "o", 0, "Number of entries to skip")
}

func fieldsFlag(cmd *cobra.Command) []mal.Field {
	fields, err := mal.ParseFields(lo.Must(cmd.Flags().GetStringSlice("fields"))...)
	handleErr(err)
	return fields
}

func jsonFlag(cmd *cobra.Command) bool {
	return lo.Must(cmd.Flags().GetBool("json"))
}

func enumStrings[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return string(v) })
}

// parseEnumArg parses value and, when it is unknown, suggests the nearest valid one.
func parseEnumArg[T ~string](value string, parse func(string) (T, error), all []T) T {
	parsed, err := parse(value)
	if err == nil {
		return parsed
	}

	closest := lo.MinBy(all, func(a, b T) bool {
		return levenshtein.Distance(value, string(a)) < levenshtein.Distance(value, string(b))
	})
	handleErr(fmt.Errorf("%w, did you mean %s?", err, style.Fg(color.Yellow)(string(closest))))
	return parsed
}

// positiveOr returns fallback for zero and negative timeouts.
func positiveOr(timeout, fallback time.Duration) time.Duration {
	if timeout <= 0 {
		return fallback
	}
	return timeout
}

// requestContext bounds one command's worth of API calls.
func requestContext() (context.Context, context.CancelFunc) {
	timeout := positiveOr(time.Duration(viper.GetInt(key.APITimeout))*time.Second, 30*time.Second)
	return context.WithTimeout(context.Background(), 2*timeout)
}

package cmd

import (
	"os"
	"strconv"

	"github.com/malq-cli/malq/mal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(animeCmd)

	addFieldsFlag(animeCmd)
	addJSONFlag(animeCmd)
	animeCmd.Flags().BoolP("all", "a", false, "Request every field")
}

// animeID accepts either a numeric id or a myanimelist.net URL.
func animeID(arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil && id > 0 {
		return id, nil
	}
	return mal.AnimeIDFromURL(arg)
}

var animeCmd = &cobra.Command{
	Use:     "anime <id|url>...",
	Short:   "Show anime by id or MyAnimeList URL",
	Example: "  malq anime 6594\n  malq anime https://myanimelist.net/anime/6594/Katanagatari --all",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids := lo.Map(args, func(arg string, _ int) int {
			id, err := animeID(arg)
			handleErr(err)
			return id
		})

		fields := fieldsFlag(cmd)
		if lo.Must(cmd.Flags().GetBool("all")) {
			fields = mal.AllFields
		} else if len(fields) == 0 {
			fields = []mal.Field{
				mal.FieldAlternativeTitles, mal.FieldMediaType, mal.FieldStatus, mal.FieldMean,
				mal.FieldRank, mal.FieldNumEpisodes, mal.FieldStartSeason, mal.FieldGenres,
				mal.FieldStudios, mal.FieldSynopsis, mal.FieldMyListStatus,
			}
		}

		client := mustClient()
		ctx, cancel := requestContext()
		defer cancel()

		animes := make([]*mal.Anime, len(ids))
		group, ctx := errgroup.WithContext(ctx)
		group.SetLimit(4)
		for i, id := range ids {
			i, id := i, id
			group.Go(func() error {
				anime, err := client.Anime(id).Fields(fields...).Run(ctx)
				animes[i] = anime
				return err
			})
		}
		handleErr(group.Wait())

		if jsonFlag(cmd) {
			if len(animes) == 1 {
				printJSON(animes[0])
			} else {
				printJSON(animes)
			}
			return
		}

		for i, anime := range animes {
			if i > 0 {
				os.Stdout.WriteString("\n")
			}
			renderAnime(os.Stdout, anime)
		}
	},
}

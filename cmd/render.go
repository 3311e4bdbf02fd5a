package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/malq-cli/malq/color"
	"github.com/malq-cli/malq/icon"
	"github.com/malq-cli/malq/mal"
	"github.com/malq-cli/malq/style"
	"github.com/malq-cli/malq/util"
	"github.com/samber/lo"
)

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(v))
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

var (
	labelStyle = style.New().Bold(true).Foreground(color.HiPurple).Render
	titleStyle = style.New().Bold(true).Foreground(color.Orange).Render
)

// tags are the short colored labels shown next to a title.
func tags(a *mal.Anime) []string {
	var out []string

	if media, ok := deref(a.MediaType); ok {
		out = append(out, style.Tag(color.New("230"), color.Blue)(strings.ToUpper(string(media))))
	}
	if status, ok := deref(a.Status); ok {
		out = append(out, style.Tag(color.New("230"), color.Purple)(util.Humanize(string(status))))
	}
	if mean, ok := deref(a.Mean); ok {
		out = append(out, style.Fg(color.Yellow)(icon.Get(icon.Star)+" "+strconv.FormatFloat(mean, 'f', 2, 64)))
	}
	if rank, ok := deref(a.Rank); ok {
		out = append(out, style.Fg(color.Cyan)("#"+strconv.Itoa(rank)))
	}

	return out
}

func listStatusLine(s *mal.ListStatus) string {
	parts := []string{style.Fg(color.Green)(util.Humanize(string(s.Status)))}

	if s.Score > 0 {
		parts = append(parts, fmt.Sprintf("scored %d", s.Score))
	}
	parts = append(parts, util.Quantify(s.NumEpisodesWatched, "episode", "episodes")+" watched")
	if s.IsRewatching {
		parts = append(parts, "rewatching")
	}
	if len(s.Tags) > 0 {
		parts = append(parts, "tags "+strings.Join(s.Tags, ", "))
	}

	return strings.Join(parts, style.Faint(" · "))
}

// renderAnime writes the detail view of one entry.
func renderAnime(w io.Writer, a *mal.Anime) {
	width := util.TerminalWidth(80)

	fmt.Fprintf(w, "%s %s\n", titleStyle(a.Title), strings.Join(tags(a), " "))
	fmt.Fprintln(w, style.Faint(a.URL()))

	if alt := a.AlternativeTitles; alt != nil {
		titles := lo.Compact(append([]string{alt.En, alt.Ja}, alt.Synonyms...))
		if len(titles) > 0 {
			fmt.Fprintf(w, "%s %s\n", labelStyle("Also known as"), strings.Join(titles, ", "))
		}
	}

	if episodes, ok := deref(a.NumEpisodes); ok {
		fmt.Fprintf(w, "%s %s\n", labelStyle("Episodes"), strconv.Itoa(episodes))
	}
	if season := a.StartSeason; season != nil {
		fmt.Fprintf(w, "%s %s %d\n", labelStyle("Season"), util.Capitalize(string(season.Season)), season.Year)
	}
	if start, ok := deref(a.StartDate); ok {
		end, _ := deref(a.EndDate)
		fmt.Fprintf(w, "%s %s to %s\n", labelStyle("Aired"), start, lo.Ternary(end == "", "?", end))
	}
	if len(a.Genres) > 0 {
		names := lo.Map(a.Genres, func(g mal.Genre, _ int) string { return g.Name })
		fmt.Fprintf(w, "%s %s\n", labelStyle("Genres"), strings.Join(names, ", "))
	}
	if len(a.Studios) > 0 {
		names := lo.Map(a.Studios, func(s mal.Studio, _ int) string { return s.Name })
		fmt.Fprintf(w, "%s %s\n", labelStyle("Studios"), strings.Join(names, ", "))
	}
	if a.ListStatus != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle("Your list"), listStatusLine(a.ListStatus))
	}
	if synopsis, ok := deref(a.Synopsis); ok && synopsis != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, util.Wrap(synopsis, util.Min(width, 100)))
	}
}

// renderResult writes one line per entry, numbered from offset+1.
func renderResult(w io.Writer, result *mal.SearchResult, offset int) {
	if result.Len() == 0 {
		fmt.Fprintln(w, style.Faint("No results"))
		return
	}

	digits := len(strconv.Itoa(offset + result.Len()))
	for i, a := range result.Data {
		number := style.Faint(fmt.Sprintf("%*d.", digits, offset+i+1))
		line := fmt.Sprintf("%s %s %s", number, style.Bold(a.Title), style.Faint("("+strconv.Itoa(a.ID)+")"))
		if t := tags(a); len(t) > 0 {
			line += " " + strings.Join(t, " ")
		}
		fmt.Fprintln(w, line)

		if a.ListStatus != nil {
			fmt.Fprintf(w, "%s %s\n", strings.Repeat(" ", digits+1), listStatusLine(a.ListStatus))
		}
	}

	if result.Next != "" {
		fmt.Fprintln(w, style.Faint(fmt.Sprintf("more with --offset %d", offset+result.Len())))
	}
}

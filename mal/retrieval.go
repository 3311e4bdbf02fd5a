package mal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetAnime fetches an entry with every field.
func (c *Client) GetAnime(ctx context.Context, id int) (*Anime, error) {
	return c.Anime(id).Fields(AllFields...).Run(ctx)
}

// GetAnimeFromURL fetches the entry a myanimelist.net page URL points at.
func (c *Client) GetAnimeFromURL(ctx context.Context, rawURL string) (*Anime, error) {
	id, err := AnimeIDFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	return c.GetAnime(ctx, id)
}

// AnimeIDFromURL returns the first path segment of an absolute URL that is a number.
// https://myanimelist.net/anime/6594/Katanagatari yields 6594.
func AnimeIDFromURL(rawURL string) (int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return 0, fmt.Errorf("%w: %q is not an absolute url", ErrMalformedURL, rawURL)
	}

	for _, segment := range strings.FieldsFunc(u.Path, isSlash) {
		if id, err := strconv.ParseUint(segment, 10, 31); err == nil {
			return int(id), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
}

func isSlash(r rune) bool {
	return r == '/'
}

// SearchAnime searches by title, returning at most limit entries.
func (c *Client) SearchAnime(ctx context.Context, query string, limit int) (*SearchResult, error) {
	return c.Search(query, limit).Run(ctx)
}

// GetSeason lists up to 500 entries of a broadcast season.
func (c *Client) GetSeason(ctx context.Context, year int, season Season) (*SearchResult, error) {
	return c.Seasonal(year, season).Limit(500).Run(ctx)
}

// GetAnimeRankings lists the top limit entries of a ranking.
func (c *Client) GetAnimeRankings(ctx context.Context, rankingType RankingType, limit int) (*SearchResult, error) {
	return c.Ranking(rankingType, limit).Run(ctx)
}

// GetUserAnimeList reads up to limit entries of username's list with every list status detail.
func (c *Client) GetUserAnimeList(ctx context.Context, username string, limit int) (*SearchResult, error) {
	return c.UserList(username).WithAllListStatusDetails().Limit(limit).Run(ctx)
}

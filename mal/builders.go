package mal

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// AnimeBuilder requests a single entry. Nothing is sent until Run.
type AnimeBuilder struct {
	client *Client
	id     int
	fields fieldList
}

// Anime starts a request for the entry with the given id.
func (c *Client) Anime(id int) *AnimeBuilder {
	return &AnimeBuilder{client: c, id: id}
}

// Fields appends fields to request. Repeats are sent as given.
func (b *AnimeBuilder) Fields(fields ...Field) *AnimeBuilder {
	b.fields.add(fields...)
	return b
}

func (b *AnimeBuilder) path() string {
	return fmt.Sprintf("/anime/%d", b.id)
}

func (b *AnimeBuilder) query() params {
	var q params
	q.raw("fields", b.fields.String())
	return q
}

// URL is the request Run would send.
func (b *AnimeBuilder) URL() string {
	return b.client.url(b.path(), b.query())
}

func (b *AnimeBuilder) Run(ctx context.Context) (*Anime, error) {
	var anime Anime
	if err := b.client.get(ctx, b.path(), b.query(), &anime); err != nil {
		return nil, err
	}
	return &anime, nil
}

// page runs a paged listing through its normalizer.
func (c *Client) page(ctx context.Context, path string, query params, normalize normalizer) (*SearchResult, error) {
	var env envelope
	if err := c.get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return normalize(&env)
}

// SearchBuilder searches entries by title.
type SearchBuilder struct {
	client *Client
	query  string
	limit  int
	offset int
	fields fieldList
}

func (c *Client) Search(query string, limit int) *SearchBuilder {
	return &SearchBuilder{client: c, query: query, limit: limit}
}

func (b *SearchBuilder) Fields(fields ...Field) *SearchBuilder {
	b.fields.add(fields...)
	return b
}

func (b *SearchBuilder) Offset(offset int) *SearchBuilder {
	b.offset = offset
	return b
}

func (b *SearchBuilder) params() params {
	var q params
	q.set("q", b.query)
	q.setInt("limit", b.limit)
	if b.offset > 0 {
		q.setInt("offset", b.offset)
	}
	q.raw("fields", b.fields.String())
	return q
}

func (b *SearchBuilder) URL() string {
	return b.client.url("/anime", b.params())
}

func (b *SearchBuilder) Run(ctx context.Context) (*SearchResult, error) {
	return b.client.page(ctx, "/anime", b.params(), normalizeSearch)
}

// SeasonalBuilder lists the entries of one broadcast season.
type SeasonalBuilder struct {
	client *Client
	year   int
	season Season
	limit  int
	offset int
	sort   SeasonSort
	fields fieldList
}

func (c *Client) Seasonal(year int, season Season) *SeasonalBuilder {
	return &SeasonalBuilder{client: c, year: year, season: season}
}

func (b *SeasonalBuilder) Fields(fields ...Field) *SeasonalBuilder {
	b.fields.add(fields...)
	return b
}

func (b *SeasonalBuilder) Limit(limit int) *SeasonalBuilder {
	b.limit = limit
	return b
}

func (b *SeasonalBuilder) Offset(offset int) *SeasonalBuilder {
	b.offset = offset
	return b
}

func (b *SeasonalBuilder) Sort(sort SeasonSort) *SeasonalBuilder {
	b.sort = sort
	return b
}

func (b *SeasonalBuilder) path() string {
	return fmt.Sprintf("/anime/season/%d/%s", b.year, b.season)
}

func (b *SeasonalBuilder) params() params {
	var q params
	q.raw("fields", b.fields.String())
	if b.sort != "" {
		q.set("sort", string(b.sort))
	}
	if b.limit > 0 {
		q.setInt("limit", b.limit)
	}
	if b.offset > 0 {
		q.setInt("offset", b.offset)
	}
	return q
}

func (b *SeasonalBuilder) URL() string {
	return b.client.url(b.path(), b.params())
}

func (b *SeasonalBuilder) Run(ctx context.Context) (*SearchResult, error) {
	return b.client.page(ctx, b.path(), b.params(), normalizeSearch)
}

// RankingBuilder lists top entries of a ranking. Each entry's Rank is set from the ranking.
type RankingBuilder struct {
	client      *Client
	rankingType RankingType
	limit       int
	offset      int
	fields      fieldList
}

func (c *Client) Ranking(rankingType RankingType, limit int) *RankingBuilder {
	return &RankingBuilder{client: c, rankingType: rankingType, limit: limit}
}

func (b *RankingBuilder) Fields(fields ...Field) *RankingBuilder {
	b.fields.add(fields...)
	return b
}

func (b *RankingBuilder) Offset(offset int) *RankingBuilder {
	b.offset = offset
	return b
}

func (b *RankingBuilder) params() params {
	var q params
	q.set("ranking_type", string(b.rankingType))
	q.setInt("limit", b.limit)
	if b.offset > 0 {
		q.setInt("offset", b.offset)
	}
	if len(b.fields) > 0 {
		q.raw("fields", b.fields.String())
	}
	return q
}

func (b *RankingBuilder) URL() string {
	return b.client.url("/anime/ranking", b.params())
}

func (b *RankingBuilder) Run(ctx context.Context) (*SearchResult, error) {
	return b.client.page(ctx, "/anime/ranking", b.params(), normalizeRanking)
}

// UserListBuilder reads a user's anime list. Each entry's ListStatus is set
// from the list; its optional details have to be asked for with ListStatusDetails.
type UserListBuilder struct {
	client   *Client
	username string
	status   Status
	sort     Sort
	limit    int
	offset   int
	fields   fieldList
	details  []ListStatusDetail
}

// UserList starts a read of username's list. "@me" is the logged in user.
func (c *Client) UserList(username string) *UserListBuilder {
	return &UserListBuilder{client: c, username: username}
}

func (b *UserListBuilder) Status(status Status) *UserListBuilder {
	b.status = status
	return b
}

func (b *UserListBuilder) Sort(sort Sort) *UserListBuilder {
	b.sort = sort
	return b
}

func (b *UserListBuilder) Limit(limit int) *UserListBuilder {
	b.limit = limit
	return b
}

func (b *UserListBuilder) Offset(offset int) *UserListBuilder {
	b.offset = offset
	return b
}

func (b *UserListBuilder) Fields(fields ...Field) *UserListBuilder {
	b.fields.add(fields...)
	return b
}

// ListStatusDetails requests optional list_status sub-fields.
func (b *UserListBuilder) ListStatusDetails(details ...ListStatusDetail) *UserListBuilder {
	b.details = append(b.details, details...)
	return b
}

func (b *UserListBuilder) WithAllListStatusDetails() *UserListBuilder {
	return b.ListStatusDetails(ListStatusDetails...)
}

func (b *UserListBuilder) path() string {
	return "/users/" + url.PathEscape(b.username) + "/animelist"
}

func (b *UserListBuilder) fieldsParam() string {
	fields := b.fields.String()
	if len(b.details) == 0 {
		return fields
	}

	details := make([]string, len(b.details))
	for i, d := range b.details {
		details[i] = string(d)
	}
	return fields + "list_status{" + strings.Join(details, ",") + "}"
}

func (b *UserListBuilder) params() params {
	var q params
	if b.status != "" {
		q.set("status", string(b.status))
	}
	if b.sort != "" {
		q.set("sort", string(b.sort))
	}
	if b.limit > 0 {
		q.setInt("limit", b.limit)
	}
	if b.offset > 0 {
		q.setInt("offset", b.offset)
	}
	if fields := b.fieldsParam(); fields != "" {
		q.raw("fields", fields)
	}
	return q
}

func (b *UserListBuilder) URL() string {
	return b.client.url(b.path(), b.params())
}

func (b *UserListBuilder) Run(ctx context.Context) (*SearchResult, error) {
	return b.client.page(ctx, b.path(), b.params(), normalizeUserList)
}

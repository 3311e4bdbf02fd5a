// Package mal is a typed client for the MyAnimeList REST API v2.
package mal

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picture is a pair of cover image URLs.
type Picture struct {
	Large  string `json:"large" jsonschema:"description=URL of the large image"`
	Medium string `json:"medium" jsonschema:"description=URL of the medium image"`
}

type AlternativeTitles struct {
	Synonyms []string `json:"synonyms"`
	En       string   `json:"en" jsonschema:"description=English title"`
	Ja       string   `json:"ja" jsonschema:"description=Japanese title"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StartSeason struct {
	Year   int    `json:"year"`
	Season Season `json:"season" jsonschema:"enum=winter,enum=spring,enum=summer,enum=fall"`
}

type Broadcast struct {
	DayOfTheWeek string `json:"day_of_the_week"`
	StartTime    string `json:"start_time,omitempty" jsonschema:"description=Start time in JST as HH:MM"`
}

// Related links to another entry. Only id, title and main_picture of the node are populated.
type Related struct {
	Node         Anime  `json:"node"`
	RelationType string `json:"relation_type" jsonschema:"description=For example sequel or side_story"`
}

type Recommendation struct {
	Node               Anime `json:"node"`
	NumRecommendations int   `json:"num_recommendations,omitempty"`
}

// StatisticsStatus counts list users per status. The API sends these as strings.
type StatisticsStatus struct {
	Watching    string `json:"watching"`
	Completed   string `json:"completed"`
	OnHold      string `json:"on_hold"`
	Dropped     string `json:"dropped"`
	PlanToWatch string `json:"plan_to_watch"`
}

type Statistics struct {
	NumListUsers int              `json:"num_list_users"`
	Status       StatisticsStatus `json:"status"`
}

// ListStatus is a user's tracking state for one anime.
type ListStatus struct {
	Status             Status   `json:"status" jsonschema:"enum=watching,enum=completed,enum=on_hold,enum=dropped,enum=plan_to_watch"`
	Score              int      `json:"score" jsonschema:"minimum=0,maximum=10"`
	NumEpisodesWatched int      `json:"num_episodes_watched"`
	IsRewatching       bool     `json:"is_rewatching"`
	StartDate          *string  `json:"start_date,omitempty"`
	FinishDate         *string  `json:"finish_date,omitempty"`
	Priority           *int     `json:"priority,omitempty" jsonschema:"minimum=0,maximum=2"`
	NumTimesRewatched  *int     `json:"num_times_rewatched,omitempty"`
	RewatchValue       *int     `json:"rewatch_value,omitempty" jsonschema:"minimum=0,maximum=5"`
	Tags               []string `json:"tags,omitempty"`
	Comments           *string  `json:"comments,omitempty"`
	UpdatedAt          string   `json:"updated_at"`
}

// Anime is a catalog entry. Optional fields stay nil unless they were
// requested with a field flag and the API had a value for them.
type Anime struct {
	ID          int     `json:"id" jsonschema:"description=MyAnimeList anime id"`
	Title       string  `json:"title"`
	MainPicture Picture `json:"main_picture"`

	AlternativeTitles      *AlternativeTitles `json:"alternative_titles,omitempty"`
	StartDate              *string            `json:"start_date,omitempty"`
	EndDate                *string            `json:"end_date,omitempty"`
	Synopsis               *string            `json:"synopsis,omitempty"`
	Mean                   *float64           `json:"mean,omitempty"`
	Rank                   *int               `json:"rank,omitempty"`
	Popularity             *int               `json:"popularity,omitempty"`
	NumListUsers           *int               `json:"num_list_users,omitempty"`
	NumScoringUsers        *int               `json:"num_scoring_users,omitempty"`
	NSFW                   *Nsfw              `json:"nsfw,omitempty"`
	Genres                 []Genre            `json:"genres,omitempty"`
	CreatedAt              *string            `json:"created_at,omitempty"`
	UpdatedAt              *string            `json:"updated_at,omitempty"`
	MediaType              *MediaType         `json:"media_type,omitempty"`
	Status                 *AiringStatus      `json:"status,omitempty"`
	ListStatus             *ListStatus        `json:"my_list_status,omitempty" jsonschema:"description=The requesting user's list entry"`
	NumEpisodes            *int               `json:"num_episodes,omitempty"`
	StartSeason            *StartSeason       `json:"start_season,omitempty"`
	Broadcast              *Broadcast         `json:"broadcast,omitempty"`
	Source                 *Source            `json:"source,omitempty"`
	AverageEpisodeDuration *int               `json:"average_episode_duration,omitempty" jsonschema:"description=Seconds"`
	Rating                 *Rating            `json:"rating,omitempty"`
	Studios                []Studio           `json:"studios,omitempty"`
	Pictures               []Picture          `json:"pictures,omitempty"`
	Background             *string            `json:"background,omitempty"`
	RelatedAnime           []Related          `json:"related_anime,omitempty"`
	RelatedManga           []Related          `json:"related_manga,omitempty"`
	Recommendations        []Recommendation   `json:"recommendations,omitempty"`
	Statistics             *Statistics        `json:"statistics,omitempty"`
}

// URL is the entry's page on myanimelist.net.
func (a *Anime) URL() string {
	return animePageURL(a.ID)
}

// SearchResult is an ordered page of entries, in the order the API returned them.
type SearchResult struct {
	Data     []*Anime `json:"data"`
	Next     string   `json:"next,omitempty" jsonschema:"description=URL of the next page"`
	Previous string   `json:"previous,omitempty"`
}

func (r *SearchResult) Len() int {
	return len(r.Data)
}

// Get returns the entry at index i.
func (r *SearchResult) Get(i int) mo.Option[*Anime] {
	if i < 0 || i >= len(r.Data) {
		return mo.None[*Anime]()
	}
	return mo.Some(r.Data[i])
}

// Titles lists entry titles in result order.
func (r *SearchResult) Titles() []string {
	return lo.Map(r.Data, func(a *Anime, _ int) string {
		return a.Title
	})
}

func (r *SearchResult) IDs() []int {
	return lo.Map(r.Data, func(a *Anime, _ int) int {
		return a.ID
	})
}

package mal

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// RankingType selects the ranking list served by /anime/ranking.
type RankingType string

const (
	RankingAll          RankingType = "all"
	RankingAiring       RankingType = "airing"
	RankingUpcoming     RankingType = "upcoming"
	RankingTV           RankingType = "tv"
	RankingOVA          RankingType = "ova"
	RankingMovie        RankingType = "movie"
	RankingSpecial      RankingType = "special"
	RankingByPopularity RankingType = "bypopularity"
	RankingFavorite     RankingType = "favorite"
)

var RankingTypes = []RankingType{
	RankingAll, RankingAiring, RankingUpcoming, RankingTV, RankingOVA,
	RankingMovie, RankingSpecial, RankingByPopularity, RankingFavorite,
}

type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

var Seasons = []Season{Winter, Spring, Summer, Fall}

type Nsfw string

const (
	NsfwWhite Nsfw = "white"
	NsfwGray  Nsfw = "gray"
	NsfwBlack Nsfw = "black"
)

var NsfwLevels = []Nsfw{NsfwWhite, NsfwGray, NsfwBlack}

type MediaType string

const (
	MediaUnknown MediaType = "unknown"
	MediaTV      MediaType = "tv"
	MediaOVA     MediaType = "ova"
	MediaMovie   MediaType = "movie"
	MediaSpecial MediaType = "special"
	MediaONA     MediaType = "ona"
	MediaMusic   MediaType = "music"
)

var MediaTypes = []MediaType{MediaUnknown, MediaTV, MediaOVA, MediaMovie, MediaSpecial, MediaONA, MediaMusic}

type AiringStatus string

const (
	FinishedAiring  AiringStatus = "finished_airing"
	CurrentlyAiring AiringStatus = "currently_airing"
	NotYetAired     AiringStatus = "not_yet_aired"
)

var AiringStatuses = []AiringStatus{FinishedAiring, CurrentlyAiring, NotYetAired}

// Status is the state of an entry on a user's list.
type Status string

const (
	Watching    Status = "watching"
	Completed   Status = "completed"
	OnHold      Status = "on_hold"
	Dropped     Status = "dropped"
	PlanToWatch Status = "plan_to_watch"
)

var Statuses = []Status{Watching, Completed, OnHold, Dropped, PlanToWatch}

type Source string

const (
	SourceOther        Source = "other"
	SourceOriginal     Source = "original"
	SourceManga        Source = "manga"
	SourceFourKoma     Source = "4_koma_manga"
	SourceWebManga     Source = "web_manga"
	SourceDigitalManga Source = "digital_manga"
	SourceNovel        Source = "novel"
	SourceLightNovel   Source = "light_novel"
	SourceVisualNovel  Source = "visual_novel"
	SourceGame         Source = "game"
	SourceCardGame     Source = "card_game"
	SourceBook         Source = "book"
	SourcePictureBook  Source = "picture_book"
	SourceRadio        Source = "radio"
	SourceMusic        Source = "music"
)

var Sources = []Source{
	SourceOther, SourceOriginal, SourceManga, SourceFourKoma, SourceWebManga,
	SourceDigitalManga, SourceNovel, SourceLightNovel, SourceVisualNovel, SourceGame,
	SourceCardGame, SourceBook, SourcePictureBook, SourceRadio, SourceMusic,
}

type Rating string

const (
	RatingG    Rating = "g"
	RatingPG   Rating = "pg"
	RatingPG13 Rating = "pg_13"
	RatingR    Rating = "r"
	RatingRP   Rating = "r+"
	RatingRX   Rating = "rx"
)

var Ratings = []Rating{RatingG, RatingPG, RatingPG13, RatingR, RatingRP, RatingRX}

// Sort orders a user's anime list.
type Sort string

const (
	SortListScore      Sort = "list_score"
	SortListUpdatedAt  Sort = "list_updated_at"
	SortAnimeTitle     Sort = "anime_title"
	SortAnimeStartDate Sort = "anime_start_date"
	SortAnimeID        Sort = "anime_id"
)

var Sorts = []Sort{SortListScore, SortListUpdatedAt, SortAnimeTitle, SortAnimeStartDate, SortAnimeID}

// SeasonSort orders a seasonal listing.
type SeasonSort string

const (
	SeasonSortScore        SeasonSort = "anime_score"
	SeasonSortNumListUsers SeasonSort = "anime_num_list_users"
)

var SeasonSorts = []SeasonSort{SeasonSortScore, SeasonSortNumListUsers}

func parseEnum[T ~string](kind, value string, all []T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(value)))
	if lo.Contains(all, v) {
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown %s %q", ErrValidation, kind, value)
}

func ParseRankingType(s string) (RankingType, error) {
	return parseEnum("ranking type", s, RankingTypes)
}

func ParseSeason(s string) (Season, error) {
	return parseEnum("season", s, Seasons)
}

func ParseStatus(s string) (Status, error) {
	return parseEnum("status", s, Statuses)
}

func ParseSort(s string) (Sort, error) {
	return parseEnum("sort", s, Sorts)
}

func ParseSeasonSort(s string) (SeasonSort, error) {
	return parseEnum("season sort", s, SeasonSorts)
}

// SeasonOf returns the anime season a month falls in.
func SeasonOf(month int) Season {
	switch {
	case month >= 1 && month <= 3:
		return Winter
	case month >= 4 && month <= 6:
		return Spring
	case month >= 7 && month <= 9:
		return Summer
	default:
		return Fall
	}
}

package mal

import (
	"fmt"
	"regexp"
	"strings"
)

// Field is an optional attribute that can be requested for an entry.
type Field string

const (
	FieldID                     Field = "id"
	FieldTitle                  Field = "title"
	FieldMainPicture            Field = "main_picture"
	FieldAlternativeTitles      Field = "alternative_titles"
	FieldStartDate              Field = "start_date"
	FieldEndDate                Field = "end_date"
	FieldSynopsis               Field = "synopsis"
	FieldMean                   Field = "mean"
	FieldRank                   Field = "rank"
	FieldPopularity             Field = "popularity"
	FieldNumListUsers           Field = "num_list_users"
	FieldNumScoringUsers        Field = "num_scoring_users"
	FieldNSFW                   Field = "nsfw"
	FieldCreatedAt              Field = "created_at"
	FieldUpdatedAt              Field = "updated_at"
	FieldMediaType              Field = "media_type"
	FieldStatus                 Field = "status"
	FieldGenres                 Field = "genres"
	FieldMyListStatus           Field = "my_list_status"
	FieldNumEpisodes            Field = "num_episodes"
	FieldStartSeason            Field = "start_season"
	FieldBroadcast              Field = "broadcast"
	FieldSource                 Field = "source"
	FieldAverageEpisodeDuration Field = "average_episode_duration"
	FieldRating                 Field = "rating"
	FieldPictures               Field = "pictures"
	FieldBackground             Field = "background"
	FieldRelatedAnime           Field = "related_anime"
	FieldRelatedManga           Field = "related_manga"
	FieldRecommendations        Field = "recommendations"
	FieldStudios                Field = "studios"
	FieldStatistics             Field = "statistics"
)

// AllFields is every field, in the order GetAnime requests them.
var AllFields = []Field{
	FieldID, FieldTitle, FieldMainPicture, FieldAlternativeTitles, FieldStartDate,
	FieldEndDate, FieldSynopsis, FieldMean, FieldRank, FieldPopularity,
	FieldNumListUsers, FieldNumScoringUsers, FieldNSFW, FieldCreatedAt, FieldUpdatedAt,
	FieldMediaType, FieldStatus, FieldGenres, FieldMyListStatus, FieldNumEpisodes,
	FieldStartSeason, FieldBroadcast, FieldSource, FieldAverageEpisodeDuration, FieldRating,
	FieldPictures, FieldBackground, FieldRelatedAnime, FieldRelatedManga, FieldRecommendations,
	FieldStudios, FieldStatistics,
}

// ListStatusDetail is a sub-field of list_status that the user list omits unless asked.
type ListStatusDetail string

const (
	DetailIsRewatching      ListStatusDetail = "is_rewatching"
	DetailNumTimesRewatched ListStatusDetail = "num_times_rewatched"
	DetailRewatchValue      ListStatusDetail = "rewatch_value"
	DetailPriority          ListStatusDetail = "priority"
	DetailTags              ListStatusDetail = "tags"
	DetailComments          ListStatusDetail = "comments"
	DetailStartDate         ListStatusDetail = "start_date"
	DetailFinishDate        ListStatusDetail = "finish_date"
)

var ListStatusDetails = []ListStatusDetail{
	DetailIsRewatching, DetailNumTimesRewatched, DetailRewatchValue, DetailPriority,
	DetailTags, DetailComments, DetailStartDate, DetailFinishDate,
}

// fieldList renders requested fields as the API's comma list. Every field is
// followed by a comma and repeats are kept, so id twice renders "id,id,".
type fieldList []Field

func (l *fieldList) add(fields ...Field) {
	*l = append(*l, fields...)
}

func (l fieldList) String() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(string(f))
		b.WriteByte(',')
	}
	return b.String()
}

var fieldPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ParseFields validates field names given as text, dropping blanks.
func ParseFields(names ...string) ([]Field, error) {
	var fields []Field
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !fieldPattern.MatchString(name) {
			return nil, fmt.Errorf("%w: field name %q", ErrValidation, name)
		}
		fields = append(fields, Field(name))
	}
	return fields, nil
}

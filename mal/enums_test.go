package mal

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnums(t *testing.T) {
	Convey("Parsing enum values", t, func() {
		Convey("Is case and space insensitive", func() {
			season, err := ParseSeason("  Winter ")
			So(err, ShouldBeNil)
			So(season, ShouldEqual, Winter)

			status, err := ParseStatus("PLAN_TO_WATCH")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, PlanToWatch)
		})

		Convey("Accepts every declared value", func() {
			for _, r := range RankingTypes {
				parsed, err := ParseRankingType(string(r))
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, r)
			}
			for _, s := range Sorts {
				_, err := ParseSort(string(s))
				So(err, ShouldBeNil)
			}
			for _, s := range SeasonSorts {
				_, err := ParseSeasonSort(string(s))
				So(err, ShouldBeNil)
			}
		})

		Convey("Rejects unknown values", func() {
			_, err := ParseRankingType("best")
			So(errors.Is(err, ErrValidation), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"best"`)
		})
	})

	Convey("SeasonOf", t, func() {
		So(SeasonOf(1), ShouldEqual, Winter)
		So(SeasonOf(4), ShouldEqual, Spring)
		So(SeasonOf(9), ShouldEqual, Summer)
		So(SeasonOf(12), ShouldEqual, Fall)
	})
}

func TestParseFields(t *testing.T) {
	Convey("ParseFields", t, func() {
		Convey("Drops blanks", func() {
			fields, err := ParseFields("mean", " ", "num_episodes ")
			So(err, ShouldBeNil)
			So(fields, ShouldResemble, []Field{FieldMean, FieldNumEpisodes})
		})

		Convey("Rejects names that would break the list", func() {
			_, err := ParseFields("mean,rank")
			So(errors.Is(err, ErrValidation), ShouldBeTrue)

			_, err = ParseFields("list_status{tags}")
			So(errors.Is(err, ErrValidation), ShouldBeTrue)
		})
	})

	Convey("fieldList", t, func() {
		var l fieldList
		So(l.String(), ShouldBeEmpty)

		l.add(FieldID, FieldID)
		So(l.String(), ShouldEqual, "id,id,")
	})
}

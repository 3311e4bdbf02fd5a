package mal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClosest(t *testing.T) {
	Convey("Given search results", t, func() {
		result := &SearchResult{Data: []*Anime{
			{ID: 1, Title: "Shingeki no Kyojin", AlternativeTitles: &AlternativeTitles{En: "Attack on Titan"}},
			{ID: 2, Title: "Shingeki no Kyojin Season 2"},
			{ID: 3, Title: "Kyojin no Hoshi"},
		}}

		Convey("The nearest title wins", func() {
			So(result.Closest("shingeki no kyojin season 2").MustGet().ID, ShouldEqual, 2)
		})

		Convey("English titles are compared too", func() {
			So(result.Closest("  Attack on Titan ").MustGet().ID, ShouldEqual, 1)
		})

		Convey("Synonyms are compared too", func() {
			result.Data[2].AlternativeTitles = &AlternativeTitles{Synonyms: []string{"Star of the Giants"}}
			So(result.Closest("star of the giants").MustGet().ID, ShouldEqual, 3)
		})
	})

	Convey("Given no results", t, func() {
		So((&SearchResult{}).Closest("anything").IsAbsent(), ShouldBeTrue)
	})
}

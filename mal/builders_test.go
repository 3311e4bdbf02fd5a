package mal

import (
	"context"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnimeBuilder(t *testing.T) {
	c := New(Options{})

	Convey("Given an anime builder", t, func() {
		b := c.Anime(6594)

		Convey("Without fields the list is empty", func() {
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime/6594?fields=")
		})

		Convey("Each field is followed by a comma", func() {
			b.Fields(FieldTitle, FieldNumEpisodes)
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime/6594?fields=title,num_episodes,")
		})

		Convey("Repeated fields are kept", func() {
			So(b.Fields(FieldID).Fields(FieldID).URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime/6594?fields=id,id,")
		})

		Convey("Calls return the same builder", func() {
			So(b.Fields(FieldMean), ShouldPointTo, b)
		})
	})
}

func TestSearchBuilder(t *testing.T) {
	c := New(Options{})

	Convey("Given a search builder", t, func() {
		b := c.Search("one piece", 4)

		Convey("The query is escaped and comes first", func() {
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime?q=one+piece&limit=4&fields=")
		})

		Convey("Offset and fields follow the limit", func() {
			b.Offset(8).Fields(FieldMean)
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime?q=one+piece&limit=4&offset=8&fields=mean,")
		})
	})
}

func TestSeasonalBuilder(t *testing.T) {
	c := New(Options{})

	Convey("Given a seasonal builder", t, func() {
		b := c.Seasonal(2010, Winter)

		Convey("The season is part of the path", func() {
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime/season/2010/winter?fields=")
		})

		Convey("Sort, limit and offset are appended when set", func() {
			b.Sort(SeasonSortScore).Limit(500).Offset(10).Fields(FieldNumEpisodes)
			So(b.URL(), ShouldEqual,
				"https://api.myanimelist.net/v2/anime/season/2010/winter?fields=num_episodes,&sort=anime_score&limit=500&offset=10")
		})
	})
}

func TestRankingBuilder(t *testing.T) {
	c := New(Options{})

	Convey("Given a ranking builder", t, func() {
		b := c.Ranking(RankingByPopularity, 10)

		Convey("Fields are omitted until requested", func() {
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/anime/ranking?ranking_type=bypopularity&limit=10")
		})

		Convey("Requested fields are appended", func() {
			So(b.Fields(FieldMean).URL(), ShouldEqual,
				"https://api.myanimelist.net/v2/anime/ranking?ranking_type=bypopularity&limit=10&fields=mean,")
		})
	})
}

func TestUserListBuilder(t *testing.T) {
	c := New(Options{})

	Convey("Given a user list builder", t, func() {
		b := c.UserList("@me")

		Convey("A bare list has no query", func() {
			So(b.URL(), ShouldEqual, "https://api.myanimelist.net/v2/users/@me/animelist")
		})

		Convey("Filters come before fields", func() {
			b.Status(Watching).Sort(SortListScore).Limit(50)
			So(b.URL(), ShouldEqual,
				"https://api.myanimelist.net/v2/users/@me/animelist?status=watching&sort=list_score&limit=50")
		})

		Convey("List status details are wrapped in braces", func() {
			b.Fields(FieldNumEpisodes).ListStatusDetails(DetailPriority, DetailTags)
			So(b.URL(), ShouldEqual,
				"https://api.myanimelist.net/v2/users/@me/animelist?fields=num_episodes,list_status{priority,tags}")
		})

		Convey("All details can be requested at once", func() {
			b.WithAllListStatusDetails()
			So(b.URL(), ShouldEqual,
				"https://api.myanimelist.net/v2/users/@me/animelist?fields=list_status{is_rewatching,num_times_rewatched,rewatch_value,priority,tags,comments,start_date,finish_date}")
		})
	})

	Convey("Given a username with a slash", t, func() {
		Convey("Then it stays within one path segment", func() {
			So(c.UserList("a/b").URL(), ShouldEqual, "https://api.myanimelist.net/v2/users/a%2Fb/animelist")
		})
	})
}

func TestBuildersRun(t *testing.T) {
	Convey("Given the ranking fixture", t, func() {
		stub := newAPIStub(http.StatusOK, fixture("ranking.json"))
		Reset(stub.Close)
		c := newTestClient(stub, "id", "")

		Convey("When the ranking is run", func() {
			result, err := c.Ranking(RankingAll, 3).Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the request matches URL()", func() {
				So(stub.last().URI, ShouldEqual, "/anime/ranking?ranking_type=all&limit=3")
			})

			Convey("Then every rank equals its position", func() {
				So(result.Len(), ShouldEqual, 3)
				for i, anime := range result.Data {
					So(anime.Rank, ShouldNotBeNil)
					So(*anime.Rank, ShouldEqual, i+1)
				}
				So(result.Next, ShouldNotBeEmpty)
			})
		})
	})

	Convey("Given the user list fixture", t, func() {
		stub := newAPIStub(http.StatusOK, fixture("animelist.json"))
		Reset(stub.Close)
		c := newTestClient(stub, "id", "tok")

		Convey("When the list is read with every detail", func() {
			result, err := c.GetUserAnimeList(context.Background(), "@me", 2)
			So(err, ShouldBeNil)

			Convey("Then list_status is attached to each entry", func() {
				So(result.IDs(), ShouldResemble, []int{6594, 9253})

				first := result.Data[0].ListStatus
				So(first, ShouldNotBeNil)
				So(first.Status, ShouldEqual, Completed)
				So(first.Score, ShouldEqual, 9)
				So(*first.Priority, ShouldEqual, 2)
				So(*first.RewatchValue, ShouldEqual, 4)
				So(first.Tags, ShouldResemble, []string{"swords", "favorites"})
				So(*first.FinishDate, ShouldEqual, "2020-02-14")

				second := result.Data[1].ListStatus
				So(second.Status, ShouldEqual, Watching)
				So(second.Priority, ShouldBeNil)
			})

			Convey("Then the limit precedes the details", func() {
				So(stub.last().URI, ShouldEqual,
					"/users/@me/animelist?limit=2&fields=list_status{is_rewatching,num_times_rewatched,rewatch_value,priority,tags,comments,start_date,finish_date}")
			})
		})
	})
}

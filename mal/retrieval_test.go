package mal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGetAnime(t *testing.T) {
	Convey("Given the Katanagatari fixture", t, func() {
		stub := newAPIStub(http.StatusOK, fixture("katanagatari.json"))
		Reset(stub.Close)
		c := newTestClient(stub, "id", "tok")

		Convey("When it is fetched by id", func() {
			anime, err := c.GetAnime(context.Background(), 6594)
			So(err, ShouldBeNil)

			Convey("Then every field is requested", func() {
				uri := stub.last().URI
				So(uri, ShouldStartWith, "/anime/6594?fields=id,title,main_picture,")
				So(uri, ShouldEndWith, "studios,statistics,")
				So(strings.Count(uri, ","), ShouldEqual, len(AllFields))
			})

			Convey("Then the entry is decoded", func() {
				So(anime.ID, ShouldEqual, 6594)
				So(anime.Title, ShouldEqual, "Katanagatari")
				So(*anime.NumEpisodes, ShouldEqual, 12)
				So(anime.StartSeason.Year, ShouldEqual, 2010)
				So(anime.StartSeason.Season, ShouldEqual, Winter)
				So(*anime.MediaType, ShouldEqual, MediaTV)
				So(*anime.Mean, ShouldAlmostEqual, 8.35)
				So(anime.AlternativeTitles.Ja, ShouldEqual, "刀語")
				So(anime.Studios, ShouldHaveLength, 1)
				So(anime.Statistics.Status.Completed, ShouldEqual, "349562")
				So(anime.URL(), ShouldEqual, "https://myanimelist.net/anime/6594")
			})

			Convey("Then the requesting user's list entry is kept", func() {
				So(anime.ListStatus, ShouldNotBeNil)
				So(anime.ListStatus.Status, ShouldEqual, Completed)
				So(anime.ListStatus.NumEpisodesWatched, ShouldEqual, 12)
			})

			Convey("Then fields that were not sent stay nil", func() {
				So(anime.Background, ShouldBeNil)
				So(anime.RelatedAnime, ShouldBeNil)
			})
		})

		Convey("When only the episode count and start season are requested", func() {
			anime, err := c.Anime(6594).Fields(FieldNumEpisodes, FieldStartSeason).Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then just those fields are sent", func() {
				So(stub.last().URI, ShouldEqual, "/anime/6594?fields=num_episodes,start_season,")
			})

			Convey("Then the requested values are decoded", func() {
				So(anime.Title, ShouldEqual, "Katanagatari")
				So(*anime.NumEpisodes, ShouldEqual, 12)
				So(*anime.StartSeason, ShouldResemble, StartSeason{Year: 2010, Season: Winter})
			})
		})

		Convey("When it is fetched from its page URL", func() {
			anime, err := c.GetAnimeFromURL(context.Background(), "https://myanimelist.net/anime/6594/Katanagatari")

			Convey("Then the id in the path is used", func() {
				So(err, ShouldBeNil)
				So(anime.ID, ShouldEqual, 6594)
				So(stub.last().URI, ShouldStartWith, "/anime/6594?")
			})
		})

		Convey("When the URL has no id", func() {
			_, err := c.GetAnimeFromURL(context.Background(), "https://myanimelist.net/anime/season")

			Convey("Then nothing is sent", func() {
				So(errors.Is(err, ErrMalformedURL), ShouldBeTrue)
				So(stub.hits(), ShouldEqual, 0)
			})
		})
	})
}

func TestAnimeIDFromURL(t *testing.T) {
	Convey("AnimeIDFromURL", t, func() {
		Convey("Takes the first numeric segment", func() {
			id, err := AnimeIDFromURL("https://myanimelist.net/anime/6594/Katanagatari")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 6594)

			id, err = AnimeIDFromURL("https://myanimelist.net/anime/21/One_Piece/episode/1000")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 21)
		})

		Convey("Ignores query and fragment", func() {
			id, err := AnimeIDFromURL("https://myanimelist.net/anime/5114?ref=42#top")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 5114)
		})

		Convey("Rejects URLs without a number", func() {
			_, err := AnimeIDFromURL("https://myanimelist.net/anime/")
			So(errors.Is(err, ErrMalformedURL), ShouldBeTrue)
		})

		Convey("Rejects relative and unparsable input", func() {
			for _, raw := range []string{"anime/6594", "6594", "://bad", "http://[::1"} {
				_, err := AnimeIDFromURL(raw)
				So(errors.Is(err, ErrMalformedURL), ShouldBeTrue)
			}
		})

		Convey("Rejects signed and oversized numbers", func() {
			_, err := AnimeIDFromURL("https://myanimelist.net/anime/-5")
			So(errors.Is(err, ErrMalformedURL), ShouldBeTrue)

			_, err = AnimeIDFromURL("https://myanimelist.net/anime/99999999999")
			So(errors.Is(err, ErrMalformedURL), ShouldBeTrue)
		})
	})
}

func TestListings(t *testing.T) {
	Convey("Given the search fixture", t, func() {
		stub := newAPIStub(http.StatusOK, fixture("search.json"))
		Reset(stub.Close)
		c := newTestClient(stub, "id", "")

		Convey("When searching", func() {
			result, err := c.SearchAnime(context.Background(), "one piece", 3)
			So(err, ShouldBeNil)

			Convey("Then entries keep the API order", func() {
				So(result.Titles(), ShouldResemble, []string{"One Piece", "One Piece Movie 1", "One Piece Film: Z"})
				So(result.Get(0).MustGet().ID, ShouldEqual, 21)
				So(result.Get(3).IsAbsent(), ShouldBeTrue)
				So(stub.last().URI, ShouldEqual, "/anime?q=one+piece&limit=3&fields=")
			})
		})

		Convey("When a season is listed", func() {
			_, err := c.GetSeason(context.Background(), 2010, Winter)
			So(err, ShouldBeNil)

			Convey("Then up to 500 entries are asked for", func() {
				So(stub.last().URI, ShouldEqual, "/anime/season/2010/winter?fields=&limit=500")
			})
		})

		Convey("When a ranking is listed", func() {
			result, err := c.GetAnimeRankings(context.Background(), RankingAiring, 3)
			So(err, ShouldBeNil)

			Convey("Then entries without a ranking sibling keep a nil Rank", func() {
				So(result.Data[0].Rank, ShouldBeNil)
				So(stub.last().URI, ShouldEqual, "/anime/ranking?ranking_type=airing&limit=3")
			})
		})
	})
}

func TestRepeatedReads(t *testing.T) {
	Convey("Given an API that does not change between reads", t, func() {
		ctx := context.Background()

		Convey("Reading an entry twice decodes the same record", func() {
			stub := newAPIStub(http.StatusOK, fixture("katanagatari.json"))
			Reset(stub.Close)
			c := newTestClient(stub, "id", "")

			first, err := c.GetAnime(ctx, 6594)
			So(err, ShouldBeNil)
			second, err := c.GetAnime(ctx, 6594)
			So(err, ShouldBeNil)

			So(second, ShouldResemble, first)
			So(stub.hits(), ShouldEqual, 2)
		})

		Convey("Reading a ranking twice decodes the same records", func() {
			stub := newAPIStub(http.StatusOK, fixture("ranking.json"))
			Reset(stub.Close)
			c := newTestClient(stub, "id", "")

			first, err := c.GetAnimeRankings(ctx, RankingAll, 3)
			So(err, ShouldBeNil)
			second, err := c.GetAnimeRankings(ctx, RankingAll, 3)
			So(err, ShouldBeNil)

			So(second, ShouldResemble, first)
			So(stub.last().URI, ShouldEqual, "/anime/ranking?ranking_type=all&limit=3")
		})
	})
}

package mal

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// UpdateAnime collects changes to one list entry and submits them with Update.
// Rejected values leave previously collected changes untouched.
type UpdateAnime struct {
	client *Client
	id     int
	fields map[string]string
	// err is reported by Update before any request is made
	err error
}

// UpdateAnime starts a change to the list entry for id.
func (c *Client) UpdateAnime(id int) *UpdateAnime {
	return &UpdateAnime{client: c, id: id, fields: make(map[string]string)}
}

// UpdateFromAnime starts a change to the list entry for a fetched anime.
// A nil anime makes Update fail with ErrValidation.
func (c *Client) UpdateFromAnime(anime *Anime) *UpdateAnime {
	if anime == nil {
		u := c.UpdateAnime(0)
		u.err = fmt.Errorf("%w: no anime to update", ErrValidation)
		return u
	}
	return c.UpdateAnime(anime.ID)
}

func (u *UpdateAnime) ID() int {
	return u.id
}

// Fields returns a copy of the pending form fields.
func (u *UpdateAnime) Fields() map[string]string {
	return maps.Clone(u.fields)
}

func (u *UpdateAnime) Status(status Status) *UpdateAnime {
	u.fields["status"] = string(status)
	return u
}

func (u *UpdateAnime) IsRewatching(rewatching bool) *UpdateAnime {
	u.fields["is_rewatching"] = strconv.FormatBool(rewatching)
	return u
}

// Score accepts 0 to 10.
func (u *UpdateAnime) Score(score int) (*UpdateAnime, error) {
	if err := checkRange("score", score, 0, 10); err != nil {
		return u, err
	}
	u.fields["score"] = strconv.Itoa(score)
	return u, nil
}

func (u *UpdateAnime) NumWatchedEpisodes(episodes int) *UpdateAnime {
	u.fields["num_watched_episodes"] = strconv.Itoa(episodes)
	return u
}

// Priority accepts 0 (low) to 2 (high).
func (u *UpdateAnime) Priority(priority int) (*UpdateAnime, error) {
	if err := checkRange("priority", priority, 0, 2); err != nil {
		return u, err
	}
	u.fields["priority"] = strconv.Itoa(priority)
	return u, nil
}

func (u *UpdateAnime) NumTimesRewatched(times int) *UpdateAnime {
	u.fields["num_times_rewatched"] = strconv.Itoa(times)
	return u
}

// RewatchValue accepts 0 to 5.
func (u *UpdateAnime) RewatchValue(value int) (*UpdateAnime, error) {
	if err := checkRange("rewatch_value", value, 0, 5); err != nil {
		return u, err
	}
	u.fields["rewatch_value"] = strconv.Itoa(value)
	return u, nil
}

// Tags replaces the entry's tags.
func (u *UpdateAnime) Tags(tags ...string) *UpdateAnime {
	u.fields["tags"] = strings.Join(tags, ",")
	return u
}

func (u *UpdateAnime) Comments(comments string) *UpdateAnime {
	u.fields["comments"] = comments
	return u
}

func (u *UpdateAnime) StartDate(year int, month time.Month, day int) (*UpdateAnime, error) {
	return u.date("start_date", year, month, day)
}

func (u *UpdateAnime) FinishDate(year int, month time.Month, day int) (*UpdateAnime, error) {
	return u.date("finish_date", year, month, day)
}

func (u *UpdateAnime) date(field string, year int, month time.Month, day int) (*UpdateAnime, error) {
	if err := checkRange(field+" month", int(month), 1, 12); err != nil {
		return u, err
	}

	// day 0 of the next month is the last day of this one
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if err := checkRange(field+" day", day, 1, last); err != nil {
		return u, err
	}

	u.fields[field] = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	return u, nil
}

// Update submits every collected change in one request and returns the
// resulting list entry. Without a token it fails before any request is made.
func (u *UpdateAnime) Update(ctx context.Context) (*ListStatus, error) {
	if u.err != nil {
		return nil, u.err
	}

	form := make(url.Values, len(u.fields))
	for k, v := range u.fields {
		form.Set(k, v)
	}

	var status ListStatus
	path := fmt.Sprintf("/anime/%d/my_list_status", u.id)
	if err := u.client.mutate(ctx, http.MethodPut, path, form, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DeleteAnime removes id from the logged in user's list.
func (c *Client) DeleteAnime(ctx context.Context, id int) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/anime/%d/my_list_status", id), nil, nil)
}

package mal

import (
	"fmt"
)

// envelope is the paged shape shared by search, seasonal, ranking and user
// list responses. Each item wraps the entry in node, next to endpoint
// specific siblings.
type envelope struct {
	Data []struct {
		Node    *Anime `json:"node"`
		Ranking *struct {
			Rank int `json:"rank"`
		} `json:"ranking,omitempty"`
		ListStatus *ListStatus `json:"list_status,omitempty"`
	} `json:"data"`
	Paging struct {
		Next     string `json:"next,omitempty"`
		Previous string `json:"previous,omitempty"`
	} `json:"paging"`
}

type normalizer func(*envelope) (*SearchResult, error)

func nodes(env *envelope) (*SearchResult, error) {
	result := &SearchResult{
		Data:     make([]*Anime, 0, len(env.Data)),
		Next:     env.Paging.Next,
		Previous: env.Paging.Previous,
	}

	for i, item := range env.Data {
		if item.Node == nil {
			return nil, fmt.Errorf("%w: item %d has no node", ErrDecode, i)
		}
		result.Data = append(result.Data, item.Node)
	}

	return result, nil
}

// normalizeSearch keeps the nodes and ignores any siblings.
func normalizeSearch(env *envelope) (*SearchResult, error) {
	return nodes(env)
}

// normalizeRanking copies ranking.rank onto each entry's Rank.
func normalizeRanking(env *envelope) (*SearchResult, error) {
	result, err := nodes(env)
	if err != nil {
		return nil, err
	}

	for i, item := range env.Data {
		if item.Ranking != nil {
			rank := item.Ranking.Rank
			result.Data[i].Rank = &rank
		}
	}

	return result, nil
}

// normalizeUserList copies the list_status sibling onto each entry's ListStatus.
func normalizeUserList(env *envelope) (*SearchResult, error) {
	result, err := nodes(env)
	if err != nil {
		return nil, err
	}

	for i, item := range env.Data {
		if item.ListStatus != nil {
			result.Data[i].ListStatus = item.ListStatus
		}
	}

	return result, nil
}

package usecase

import (
	"sort"

	"newsboard/services/news/internal/entity"
)

// Ordering selects how a news listing is sorted. Every ordering falls back
// to creation time (newest first) and then id, so the result is total.
type Ordering int

const (
	// OrderStorage keeps the order rows were stored in.
	OrderStorage Ordering = iota
	OrderRecency
	OrderPopularity
	OrderEngagement
)

func (o Ordering) String() string {
	switch o {
	case OrderRecency:
		return "recency"
	case OrderPopularity:
		return "popularity"
	case OrderEngagement:
		return "engagement"
	default:
		return "storage"
	}
}

// SortNews orders items in place. Counts must already be populated.
func SortNews(items []*entity.News, by Ordering) {
	if by == OrderStorage {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch by {
		case OrderPopularity:
			if a.LikeCount != b.LikeCount {
				return a.LikeCount > b.LikeCount
			}
		case OrderEngagement:
			if a.CommentCount != b.CommentCount {
				return a.CommentCount > b.CommentCount
			}
		}
		return newerFirst(a, b)
	})
}

func newerFirst(a, b *entity.News) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

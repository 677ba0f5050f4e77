package catalog

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/flicks/internal/domain"
)

// TopRated returns every movie ordered by descending average rating.
// Unrated movies count as 0 and ties keep insertion order.
// The store's own order is left untouched.
func (s *Service) TopRated() []domain.Movie {
	movies := s.store.All()
	slices.SortStableFunc(movies, func(a, b domain.Movie) int {
		avgA, avgB := a.AverageRating(), b.AverageRating()
		switch {
		case avgA > avgB:
			return -1
		case avgA < avgB:
			return 1
		default:
			return 0
		}
	})
	s.logger.Debug("top rated", "count", len(movies))
	return movies
}

// ByGenre returns movies whose genre equals genre, ignoring case and surrounding space
func (s *Service) ByGenre(genre string) []domain.Movie {
	return s.filter("genre", genre, func(m domain.Movie) bool {
		return domain.EqualFold(m.Genre, genre)
	})
}

// ByDirector returns movies whose director equals director, ignoring case and surrounding space
func (s *Service) ByDirector(director string) []domain.Movie {
	return s.filter("director", director, func(m domain.Movie) bool {
		return domain.EqualFold(m.Director, director)
	})
}

// ByKeyword returns movies whose title contains keyword, ignoring case
func (s *Service) ByKeyword(keyword string) []domain.Movie {
	return s.filter("keyword", keyword, func(m domain.Movie) bool {
		return domain.ContainsFold(m.Title, keyword)
	})
}

// Suggest returns up to limit distinct titles that fuzzily match keyword,
// closest first. Used to help out when ByKeyword finds nothing.
func (s *Service) Suggest(keyword string, limit int) []string {
	if limit <= 0 || domain.Normalize(keyword) == "" {
		return nil
	}

	var titles []string
	seen := make(map[string]bool)
	for _, m := range s.store.All() {
		if !seen[m.Title] {
			seen[m.Title] = true
			titles = append(titles, m.Title)
		}
	}

	ranks := fuzzy.RankFindFold(domain.Normalize(keyword), titles)
	sort.Stable(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	s.logger.Debug("suggestions", "keyword", keyword, "count", len(out))
	return out
}

func (s *Service) filter(field, value string, match func(domain.Movie) bool) []domain.Movie {
	var out []domain.Movie
	for _, m := range s.store.All() {
		if match(m) {
			out = append(out, m)
		}
	}
	s.logger.Debug("filtered movies", "field", field, "value", value, "matches", len(out))
	return out
}

package store

import (
	"slices"

	"github.com/mmcdole/flicks/internal/domain"
)

// MemoryStore implements domain.MovieStore as an ordered in-memory slice.
// It lives for the lifetime of the process and is not safe for concurrent use.
type MemoryStore struct {
	movies []domain.Movie
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends m to the end of the collection with an empty rating history.
// Duplicate IDs are accepted.
func (s *MemoryStore) Add(m domain.Movie) {
	m.Ratings = []int{}
	s.movies = append(s.movies, m)
}

func (s *MemoryStore) Find(id string) (domain.Movie, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Movie{}, false
	}
	return s.movies[i].Clone(), true
}

func (s *MemoryStore) AppendRating(id string, rating int) (domain.Movie, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Movie{}, false
	}
	s.movies[i].Ratings = append(s.movies[i].Ratings, rating)
	return s.movies[i].Clone(), true
}

func (s *MemoryStore) Remove(id string) (domain.Movie, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Movie{}, false
	}
	removed := s.movies[i]
	s.movies = slices.Delete(s.movies, i, i+1)
	return removed, true
}

func (s *MemoryStore) All() []domain.Movie {
	out := make([]domain.Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Clone()
	}
	return out
}

func (s *MemoryStore) Len() int {
	return len(s.movies)
}

// index returns the position of the first movie with id, or -1
func (s *MemoryStore) index(id string) int {
	return slices.IndexFunc(s.movies, func(m domain.Movie) bool {
		return m.ID == id
	})
}

package catalog

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mmcdole/flicks/internal/domain"
)

var (
	validate  = validator.New(validator.WithRequiredStructEnabled())
	ratingTag = fmt.Sprintf("gte=%d,lte=%d", domain.MinRating, domain.MaxRating)
)

// Service owns the movie store and exposes catalog operations.
type Service struct {
	store  domain.MovieStore
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(store domain.MovieStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// AddMovie appends a new, unrated movie. Duplicate IDs are not rejected.
func (s *Service) AddMovie(id, title, director string, releaseYear int, genre string) domain.Movie {
	m := domain.Movie{
		ID:          id,
		Title:       title,
		Director:    director,
		ReleaseYear: releaseYear,
		Genre:       genre,
	}
	s.store.Add(m)
	s.logger.Info("movie added", "id", id, "title", title, "count", s.store.Len())
	m.Ratings = []int{}
	return m
}

// FindMovie returns the first movie with the given ID
func (s *Service) FindMovie(id string) (domain.Movie, error) {
	m, ok := s.store.Find(id)
	if !ok {
		s.logger.Debug("movie lookup missed", "id", id)
		return domain.Movie{}, fmt.Errorf("find %q: %w", id, domain.ErrMovieNotFound)
	}
	return m, nil
}

// RateMovie records a 1-5 star rating. The range is checked before the lookup.
func (s *Service) RateMovie(id string, rating int) (domain.Movie, error) {
	if err := validate.Var(rating, ratingTag); err != nil {
		s.logger.Debug("rating rejected", "id", id, "rating", rating, "error", err)
		return domain.Movie{}, fmt.Errorf("rate %q with %d: %w", id, rating, domain.ErrInvalidRating)
	}

	m, ok := s.store.AppendRating(id, rating)
	if !ok {
		s.logger.Debug("rating target missing", "id", id)
		return domain.Movie{}, fmt.Errorf("rate %q: %w", id, domain.ErrMovieNotFound)
	}

	s.logger.Info("movie rated", "id", id, "rating", rating, "ratings", len(m.Ratings))
	return m, nil
}

// AverageRating returns the mean rating of a movie at full precision.
// An unrated movie averages to 0.
func (s *Service) AverageRating(id string) (float64, error) {
	m, err := s.FindMovie(id)
	if err != nil {
		return 0, err
	}
	return m.AverageRating(), nil
}

// RemoveMovie deletes the first movie with the given ID and returns it
func (s *Service) RemoveMovie(id string) (domain.Movie, error) {
	m, ok := s.store.Remove(id)
	if !ok {
		s.logger.Debug("remove target missing", "id", id)
		return domain.Movie{}, fmt.Errorf("remove %q: %w", id, domain.ErrMovieNotFound)
	}
	s.logger.Info("movie removed", "id", id, "title", m.Title, "count", s.store.Len())
	return m, nil
}

// Detail returns a movie together with its computed average
func (s *Service) Detail(id string) (domain.MovieDetail, error) {
	m, err := s.FindMovie(id)
	if err != nil {
		return domain.MovieDetail{}, err
	}
	return domain.MovieDetail{
		Movie:   m,
		Average: m.AverageRating(),
		Rated:   m.IsRated(),
	}, nil
}

// Count returns the number of movies in the catalog
func (s *Service) Count() int {
	return s.store.Len()
}

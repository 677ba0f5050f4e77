package domain

import (
	"fmt"
	"slices"
)

// Rating bounds (inclusive)
const (
	MinRating = 1
	MaxRating = 5
)

// NoRatingsLabel is shown in place of an average for movies nobody has rated
const NoRatingsLabel = "No Ratings"

// Movie represents one catalog entry
type Movie struct {
	ID          string // Externally supplied; duplicates allowed, first match wins
	Title       string // Display title
	Director    string
	ReleaseYear int
	Genre       string
	Ratings     []int // Star ratings in submission order
}

// AverageRating returns the mean of all ratings, or 0 if the movie is unrated
func (m Movie) AverageRating() float64 {
	return Average(m.Ratings)
}

// IsRated returns true if at least one rating has been recorded
func (m Movie) IsRated() bool {
	return len(m.Ratings) > 0
}

// FormattedRating returns the average rounded to one decimal place
func (m Movie) FormattedRating() string {
	if !m.IsRated() {
		return NoRatingsLabel
	}
	return FormatRating(m.AverageRating())
}

// Clone returns a copy that does not share the ratings slice
func (m Movie) Clone() Movie {
	c := m
	c.Ratings = slices.Clone(m.Ratings)
	return c
}

// ListLine returns the "Title (Year)" form used in filtered listings
func (m Movie) ListLine() string {
	return fmt.Sprintf("%s (%d)", m.Title, m.ReleaseYear)
}

// MovieDetail is a movie together with its computed average
type MovieDetail struct {
	Movie
	Average float64
	Rated   bool
}

// FormattedAverage returns the one-decimal average or NoRatingsLabel
func (d MovieDetail) FormattedAverage() string {
	if !d.Rated {
		return NoRatingsLabel
	}
	return FormatRating(d.Average)
}

// Average computes the arithmetic mean of ratings. An empty slice averages to 0.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// FormatRating rounds an average to one decimal place for display
func FormatRating(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// ValidRating reports whether r is within MinRating..MaxRating
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

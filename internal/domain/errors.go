package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrMovieNotFound indicates no movie matches the requested ID
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidRating indicates a rating outside the 1-5 star range
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidNumber indicates non-numeric text where a whole number was expected
	ErrInvalidNumber = errors.New("not a whole number")
)

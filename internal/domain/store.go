package domain

// MovieStore holds the ordered movie collection.
// Lookups match IDs exactly and stop at the first hit.
// Returned movies are copies; mutate only through the store.
type MovieStore interface {
	// Add appends a movie with an empty rating history
	Add(m Movie)

	// Find returns the first movie with the given ID
	Find(id string) (Movie, bool)

	// AppendRating records a rating on the first movie with the given ID
	AppendRating(id string, rating int) (Movie, bool)

	// Remove deletes the first movie with the given ID and returns it
	Remove(id string) (Movie, bool)

	// All returns every movie in insertion order
	All() []Movie

	// Len returns the number of stored movies
	Len() int
}

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/logging"
	"github.com/mmcdole/flicks/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemoryStore(), logging.NullLogger())
}

func titles(movies []domain.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestAddThenFind(t *testing.T) {
	svc := newTestService()
	added := svc.AddMovie("1", "Inception", "Nolan", 2010, "Sci-Fi")

	got, err := svc.FindMovie("1")
	require.NoError(t, err)

	want := domain.Movie{ID: "1", Title: "Inception", Director: "Nolan", ReleaseYear: 2010, Genre: "Sci-Fi", Ratings: []int{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindMovie mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, added); diff != "" {
		t.Errorf("AddMovie mismatch (-want +got):\n%s", diff)
	}
}

func TestFindUnknown(t *testing.T) {
	svc := newTestService()
	_, err := svc.FindMovie("404")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestRateUpdatesAverage(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("1", "Heat", "Mann", 1995, "Crime")

	var applied []int
	for _, r := range []int{5, 3, 4, 1, 2, 5} {
		_, err := svc.RateMovie("1", r)
		require.NoError(t, err)
		applied = append(applied, r)

		avg, err := svc.AverageRating("1")
		require.NoError(t, err)
		assert.InDelta(t, domain.Average(applied), avg, 1e-9)
	}
}

func TestRateRejectsOutOfRange(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("1", "Heat", "Mann", 1995, "Crime")
	_, err := svc.RateMovie("1", 3)
	require.NoError(t, err)

	for _, r := range []int{0, 6, -1, 100} {
		_, err := svc.RateMovie("1", r)
		require.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", r)
	}

	m, err := svc.FindMovie("1")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, m.Ratings)
}

func TestRateChecksRangeBeforeLookup(t *testing.T) {
	svc := newTestService()
	_, err := svc.RateMovie("missing", 9)
	require.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.RateMovie("missing", 3)
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestAverageRating(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("1", "Unrated", "Nobody", 2000, "Drama")

	avg, err := svc.AverageRating("1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	_, err = svc.AverageRating("2")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestRemove(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("1", "A", "X", 2000, "Drama")
	svc.AddMovie("2", "B", "Y", 2001, "Drama")

	removed, err := svc.RemoveMovie("1")
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Title)
	assert.Equal(t, 1, svc.Count())

	_, err = svc.FindMovie("1")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)

	_, err = svc.RemoveMovie("1")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
	assert.Equal(t, 1, svc.Count())
}

func TestDetail(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("1", "Alien", "Scott", 1979, "Horror")

	d, err := svc.Detail("1")
	require.NoError(t, err)
	assert.False(t, d.Rated)
	assert.Equal(t, domain.NoRatingsLabel, d.FormattedAverage())

	_, err = svc.RateMovie("1", 5)
	require.NoError(t, err)
	d, err = svc.Detail("1")
	require.NoError(t, err)
	assert.True(t, d.Rated)
	assert.Equal(t, "5.0", d.FormattedAverage())
	assert.Equal(t, "Scott", d.Director)

	_, err = svc.Detail("2")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestInceptionScenario(t *testing.T) {
	svc := newTestService()
	svc.AddMovie("0", "Unrated Short", "Someone", 2001, "Drama")
	svc.AddMovie("2", "Okay Film", "Someone", 2002, "Drama")
	_, err := svc.RateMovie("2", 3)
	require.NoError(t, err)
	svc.AddMovie("1", "Inception", "Nolan", 2010, "Sci-Fi")

	_, err = svc.RateMovie("1", 4)
	require.NoError(t, err)
	_, err = svc.RateMovie("1", 5)
	require.NoError(t, err)

	avg, err := svc.AverageRating("1")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 1e-9)

	top := svc.TopRated()
	require.NotEmpty(t, top)
	assert.Equal(t, "1", top[0].ID)

	d, err := svc.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "Inception", d.Title)
	assert.Equal(t, "4.5", d.FormattedAverage())

	_, err = svc.RemoveMovie("1")
	require.NoError(t, err)
	_, err = svc.FindMovie("1")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Service {
	t.Helper()
	svc := newTestService()
	svc.AddMovie("1", "The Matrix", "Lana Wachowski", 1999, "Action")
	svc.AddMovie("2", "Heat", "Michael Mann", 1995, "Crime")
	svc.AddMovie("3", "Speed", "Jan de Bont", 1994, "action")
	svc.AddMovie("4", "Collateral", "michael mann", 2004, "Crime")
	svc.AddMovie("5", "The Matrix Reloaded", "Lana Wachowski", 2003, "Action ")
	return svc
}

func rate(t *testing.T, svc *Service, id string, ratings ...int) {
	t.Helper()
	for _, r := range ratings {
		_, err := svc.RateMovie(id, r)
		require.NoError(t, err)
	}
}

func TestTopRatedOrdering(t *testing.T) {
	svc := seeded(t)
	rate(t, svc, "2", 5)
	rate(t, svc, "4", 3, 4)
	rate(t, svc, "3", 5, 4)

	top := svc.TopRated()
	assert.Equal(t, []string{"Heat", "Speed", "Collateral", "The Matrix", "The Matrix Reloaded"}, titles(top))
}

func TestTopRatedTiesKeepInsertionOrder(t *testing.T) {
	svc := seeded(t)
	rate(t, svc, "5", 4)
	rate(t, svc, "2", 4)

	top := svc.TopRated()
	assert.Equal(t, []string{"Heat", "The Matrix Reloaded", "The Matrix", "Speed", "Collateral"}, titles(top))
}

func TestTopRatedLeavesStoreOrder(t *testing.T) {
	svc := seeded(t)
	rate(t, svc, "4", 5)

	before := titles(svc.store.All())
	_ = svc.TopRated()
	assert.Equal(t, before, titles(svc.store.All()))
}

func TestTopRatedEmpty(t *testing.T) {
	svc := newTestService()
	assert.Empty(t, svc.TopRated())
}

func TestByGenreCaseInsensitive(t *testing.T) {
	svc := seeded(t)

	upper := svc.ByGenre("Action")
	lower := svc.ByGenre("action")
	assert.Equal(t, upper, lower)
	assert.Equal(t, []string{"The Matrix", "Speed", "The Matrix Reloaded"}, titles(upper))
}

func TestByGenreExactNotSubstring(t *testing.T) {
	svc := seeded(t)
	assert.Empty(t, svc.ByGenre("Act"))
	assert.Empty(t, svc.ByGenre("Horror"))
}

func TestByDirector(t *testing.T) {
	svc := seeded(t)
	assert.Equal(t, []string{"Heat", "Collateral"}, titles(svc.ByDirector("MICHAEL MANN")))
	assert.Empty(t, svc.ByDirector("Mann"))
}

func TestByKeyword(t *testing.T) {
	svc := seeded(t)
	assert.Equal(t, []string{"The Matrix", "The Matrix Reloaded"}, titles(svc.ByKeyword("mat")))
	assert.Equal(t, []string{"Collateral"}, titles(svc.ByKeyword("LAT")))
	assert.Empty(t, svc.ByKeyword("godfather"))
}

func TestByKeywordEmptyMatchesAll(t *testing.T) {
	svc := seeded(t)
	assert.Len(t, svc.ByKeyword(""), 5)
}

func TestSuggest(t *testing.T) {
	svc := seeded(t)

	got := svc.Suggest("mtrx", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "The Matrix", got[0])
	assert.Subset(t, []string{"The Matrix", "The Matrix Reloaded"}, got)

	assert.Empty(t, svc.Suggest("zzz", 3))
	assert.Empty(t, svc.Suggest("mtrx", 0))
	assert.Empty(t, svc.Suggest("  ", 3))
	assert.Len(t, svc.Suggest("e", 2), 2)
}

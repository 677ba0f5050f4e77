// Package menu maps numbered menu options to catalog operations and renders
// their results as text. Front ends collect the answers; menu does the rest.
package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmcdole/flicks/internal/catalog"
	"github.com/mmcdole/flicks/internal/domain"
)

// Title is the menu heading
const Title = "Movie Management System"

// Kind classifies an outcome for styling
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// Outcome is the rendered result of one menu action
type Outcome struct {
	Kind    Kind
	Heading string
	Lines   []string
	Keyword string // Set for keyword searches so matches can be highlighted
	Exit    bool
}

// String joins the heading and lines, one per row
func (o Outcome) String() string {
	var b strings.Builder
	if o.Heading != "" {
		b.WriteString(o.Heading)
		b.WriteByte('\n')
	}
	for _, line := range o.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func info(lines ...string) Outcome    { return Outcome{Kind: KindInfo, Lines: lines} }
func success(lines ...string) Outcome { return Outcome{Kind: KindSuccess, Lines: lines} }
func failure(lines ...string) Outcome { return Outcome{Kind: KindError, Lines: lines} }

// Option is a single numbered menu entry
type Option struct {
	Key     string
	Label   string
	Prompts []string // Asked in order before the action runs
	action  func(r *Runner, answers []string) Outcome
}

var options = []Option{
	{Key: "1", Label: "Add Movie", Prompts: []string{"Movie ID", "Title", "Director", "Release Year", "Genre"}, action: (*Runner).add},
	{Key: "2", Label: "Rate Movie", Prompts: []string{"Movie ID to Rate", "Rating (1-5)"}, action: (*Runner).rate},
	{Key: "3", Label: "Show Top Rated Movies", action: (*Runner).topRated},
	{Key: "4", Label: "Search Movies by Genre", Prompts: []string{"Genre"}, action: (*Runner).byGenre},
	{Key: "5", Label: "Search Movies by Director", Prompts: []string{"Director's Name"}, action: (*Runner).byDirector},
	{Key: "6", Label: "Search Movies by Keyword", Prompts: []string{"Keyword"}, action: (*Runner).byKeyword},
	{Key: "7", Label: "Get Movie Details", Prompts: []string{"Movie ID"}, action: (*Runner).detail},
	{Key: "8", Label: "Remove Movie", Prompts: []string{"Movie ID to Remove"}, action: (*Runner).remove},
	{Key: "9", Label: "Exit", action: (*Runner).exit},
}

// Options returns the menu entries in display order
func Options() []Option {
	return options
}

// Lookup finds the option for a typed choice
func Lookup(choice string) (Option, bool) {
	choice = strings.TrimSpace(choice)
	for _, opt := range options {
		if opt.Key == choice {
			return opt, true
		}
	}
	return Option{}, false
}

// Lines renders the menu entries as "1. Add Movie" rows
func Lines() []string {
	lines := make([]string, len(options))
	for i, opt := range options {
		lines[i] = fmt.Sprintf("%s. %s", opt.Key, opt.Label)
	}
	return lines
}

// InvalidOption is the outcome for an unknown menu choice
func InvalidOption() Outcome {
	return failure("Invalid option! Please try again.")
}

// NumberError reports text that could not be parsed as a whole number
type NumberError struct {
	Field string
	Input string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, domain.ErrInvalidNumber)
}

func (e *NumberError) Unwrap() error {
	return domain.ErrInvalidNumber
}

// ParseInt parses a whole number typed for field. Surrounding space is ignored;
// anything else that is not an integer is rejected.
func ParseInt(field, input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &NumberError{Field: field, Input: input}
	}
	return n, nil
}

// Runner executes menu options against a catalog
type Runner struct {
	catalog     *catalog.Service
	suggestions int
	logger      *slog.Logger
}

// NewRunner creates a runner. suggestions caps the fuzzy titles offered
// after an empty keyword search; 0 disables them.
func NewRunner(svc *catalog.Service, suggestions int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{catalog: svc, suggestions: suggestions, logger: logger}
}

// Execute runs opt with one answer per prompt
func (r *Runner) Execute(opt Option, answers []string) Outcome {
	if len(answers) != len(opt.Prompts) {
		r.logger.Error("answer count mismatch", "option", opt.Key, "want", len(opt.Prompts), "got", len(answers))
		return InvalidOption()
	}
	r.logger.Debug("menu option", "option", opt.Key, "label", opt.Label)
	return opt.action(r, answers)
}

func (r *Runner) add(a []string) Outcome {
	year, err := ParseInt("Release Year", a[3])
	if err != nil {
		return r.errorOutcome(err)
	}
	m := r.catalog.AddMovie(a[0], a[1], a[2], year, a[4])
	return success(fmt.Sprintf("Movie '%s' added successfully!", m.Title))
}

func (r *Runner) rate(a []string) Outcome {
	rating, err := ParseInt("Rating", a[1])
	if err != nil {
		return r.errorOutcome(err)
	}
	m, err := r.catalog.RateMovie(a[0], rating)
	if err != nil {
		return r.errorOutcome(err)
	}
	return success(fmt.Sprintf("Rated '%s' with %d stars.", m.Title, rating))
}

func (r *Runner) topRated([]string) Outcome {
	movies := r.catalog.TopRated()
	if len(movies) == 0 {
		return info("No movies available.")
	}
	out := Outcome{Kind: KindInfo, Heading: "Top Rated Movies:"}
	for _, m := range movies {
		out.Lines = append(out.Lines, fmt.Sprintf("%s - %s", m.Title, m.FormattedRating()))
	}
	return out
}

func (r *Runner) byGenre(a []string) Outcome {
	movies := r.catalog.ByGenre(a[0])
	if len(movies) == 0 {
		return info("No movies found in this genre.")
	}
	return listing("Movies in Genre: "+a[0], movies)
}

func (r *Runner) byDirector(a []string) Outcome {
	movies := r.catalog.ByDirector(a[0])
	if len(movies) == 0 {
		return info("No movies found by this director.")
	}
	return listing("Movies by Director: "+a[0], movies)
}

func (r *Runner) byKeyword(a []string) Outcome {
	keyword := a[0]
	movies := r.catalog.ByKeyword(keyword)
	if len(movies) == 0 {
		out := info("No movies found with this keyword.")
		if hints := r.catalog.Suggest(keyword, r.suggestions); len(hints) > 0 {
			out.Lines = append(out.Lines, fmt.Sprintf("Did you mean: %s?", strings.Join(hints, ", ")))
		}
		return out
	}
	out := listing(fmt.Sprintf("Movies containing '%s':", keyword), movies)
	out.Keyword = keyword
	return out
}

func (r *Runner) detail(a []string) Outcome {
	d, err := r.catalog.Detail(a[0])
	if err != nil {
		return r.errorOutcome(err)
	}
	return Outcome{
		Kind:    KindInfo,
		Heading: "Movie Details:",
		Lines: []string{
			"Title: " + d.Title,
			"Director: " + d.Director,
			fmt.Sprintf("Year: %d", d.ReleaseYear),
			"Genre: " + d.Genre,
			"Average Rating: " + d.FormattedAverage(),
		},
	}
}

func (r *Runner) remove(a []string) Outcome {
	m, err := r.catalog.RemoveMovie(a[0])
	if err != nil {
		return r.errorOutcome(err)
	}
	return success(fmt.Sprintf("Removed movie: '%s'.", m.Title))
}

func (r *Runner) exit([]string) Outcome {
	out := info("Exiting... Have a great day!")
	out.Exit = true
	return out
}

func listing(heading string, movies []domain.Movie) Outcome {
	out := Outcome{Kind: KindInfo, Heading: heading}
	for _, m := range movies {
		out.Lines = append(out.Lines, m.ListLine())
	}
	return out
}

// errorOutcome turns a catalog or parse error into a user-facing message
func (r *Runner) errorOutcome(err error) Outcome {
	r.logger.Debug("menu action failed", "error", err)

	var numErr *NumberError
	switch {
	case errors.As(err, &numErr):
		return failure(numErr.Field + " must be a whole number.")
	case errors.Is(err, domain.ErrMovieNotFound):
		return failure("Movie not found.")
	case errors.Is(err, domain.ErrInvalidRating):
		return failure(fmt.Sprintf("Rating must be between %d and %d.", domain.MinRating, domain.MaxRating))
	default:
		r.logger.Error("unexpected menu error", "error", err)
		return failure("Something went wrong: " + err.Error())
	}
}

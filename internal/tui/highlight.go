package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/flicks/internal/tui/styles"
)

// matchIndexes returns the byte offsets in line that match keyword, ignoring case
func matchIndexes(line, keyword string) []int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}
	matches := fuzzy.Find(keyword, []string{strings.ToLower(line)})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}

// highlightMatches renders line with the characters matching keyword emphasized
func highlightMatches(line, keyword string) string {
	idx := matchIndexes(line, keyword)
	if len(idx) == 0 {
		return styles.NormalStyle.Render(line)
	}

	matchSet := make(map[int]bool, len(idx))
	for _, i := range idx {
		matchSet[i] = true
	}

	// Batch consecutive characters with the same match state
	var result, batch strings.Builder
	inMatch := false
	flush := func() {
		if batch.Len() == 0 {
			return
		}
		if inMatch {
			result.WriteString(styles.MatchHighlightStyle.Render(batch.String()))
		} else {
			result.WriteString(styles.NormalStyle.Render(batch.String()))
		}
		batch.Reset()
	}
	for i, r := range line {
		if matchSet[i] != inMatch {
			flush()
			inMatch = matchSet[i]
		}
		batch.WriteRune(r)
	}
	flush()

	return result.String()
}

// Package catalog holds the static study-archive content: course chapters
// with markdown summaries, formula tables, and worked problems.
//
// The catalog is a fixed literal table initialized at package load and never
// mutated, so concurrent reads need no synchronization.
package catalog

import "strings"

// Problem is a worked exercise. Question and Answer are markdown with
// embedded LaTeX delimiters.
type Problem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Formula is a named equation. LaTeX is a raw TeX expression without
// delimiters.
type Formula struct {
	Name  string `json:"name"`
	LaTeX string `json:"latex"`
}

// Chapter is a single course chapter. Formula and problem order is
// display-relevant and preserved as authored.
type Chapter struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	YouTubeID string    `json:"youtubeId,omitempty"`
	Formulas  []Formula `json:"formulas"`
	Problems  []Problem `json:"problems"`
}

// FormulaRef is a formula flattened with its originating chapter context,
// used by the formula index and search.
type FormulaRef struct {
	Formula
	ChapterID    string `json:"chapterId"`
	ChapterTitle string `json:"chapterTitle"`
}

// Chapters returns all chapters in course order.
func Chapters() []Chapter {
	return chapters
}

// ChapterByID returns the chapter with the given id. Unknown ids are a
// normal result, reported via ok==false. The table is small enough that a
// linear scan is fine.
func ChapterByID(id string) (Chapter, bool) {
	for _, ch := range chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}

// AllFormulas returns every formula across the catalog, preserving chapter
// order and then formula order within each chapter. Each entry carries its
// chapter's id and title unchanged.
func AllFormulas() []FormulaRef {
	var out []FormulaRef
	for _, ch := range chapters {
		for _, f := range ch.Formulas {
			out = append(out, FormulaRef{
				Formula:      f,
				ChapterID:    ch.ID,
				ChapterTitle: ch.Title,
			})
		}
	}
	return out
}

// SearchFormulas filters AllFormulas by a case-insensitive substring match
// over the formula name, its LaTeX source, and the chapter title. A blank
// query returns the full list.
func SearchFormulas(query string) []FormulaRef {
	all := AllFormulas()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	var out []FormulaRef
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.LaTeX), q) ||
			strings.Contains(strings.ToLower(f.ChapterTitle), q) {
			out = append(out, f)
		}
	}
	return out
}

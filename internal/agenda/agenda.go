// Package agenda groups a meeting transcript into numbered agenda items.
//
// The transcript is split into sentences. Consecutive sentences belong to the
// same item until a sentence mentions one of the configured keywords, which
// opens the next item.
package agenda

import (
	"fmt"
	"regexp"
	"strings"
)

// sentenceBreak matches terminal punctuation followed by whitespace.
var sentenceBreak = regexp.MustCompile(`[.?!]\s+`)

// Item is one agenda entry: its 1-based number and the sentences discussed under it.
type Item struct {
	Number int
	Points []string
}

// Heading returns the item title, e.g. "Agenda Item 2:".
func (it Item) Heading() string {
	return fmt.Sprintf("Agenda Item %d:", it.Number)
}

// Segmenter splits transcripts on keyword boundaries.
type Segmenter struct {
	keywords []string
}

// NewSegmenter returns a Segmenter matching keywords case-insensitively.
// Blank keywords are ignored.
func NewSegmenter(keywords []string) *Segmenter {
	s := &Segmenter{}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			s.keywords = append(s.keywords, k)
		}
	}
	return s
}

// Sentences splits a transcript into trimmed, non-empty sentences.
func Sentences(transcript string) []string {
	var out []string
	for _, p := range sentenceBreak.Split(transcript, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Segment groups the transcript into items. An empty transcript yields no items.
func (s *Segmenter) Segment(transcript string) []Item {
	var (
		items   []Item
		current []string
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		items = append(items, Item{Number: len(items) + 1, Points: current})
		current = nil
	}

	for _, sentence := range Sentences(transcript) {
		if s.hasKeyword(sentence) {
			flush()
		}
		current = append(current, sentence)
	}
	flush()

	return items
}

func (s *Segmenter) hasKeyword(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, k := range s.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Text renders items as plain text:
//
//	Agenda Item 1:
//	- first point
//	- second point
//
// with a blank line between items.
func Text(items []Item) string {
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		var b strings.Builder
		b.WriteString(it.Heading())
		for _, p := range it.Points {
			b.WriteString("\n- ")
			b.WriteString(p)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

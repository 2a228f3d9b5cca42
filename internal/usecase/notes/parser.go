package notes

import (
	"strings"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// Section is one heading of rendered notes with its bullets
type Section struct {
	Heading string
	Bullets []string
}

// ParseNotes recovers sections from structured or smart notes. Lines that
// start with a "## " or "# " header open a section; "• " lines add bullets
// to the open section. Anything else is ignored.
func ParseNotes(text string) []Section {
	var (
		sections []Section
		cur      *Section
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, HeaderPrefix):
			sections = append(sections, Section{Heading: strings.TrimSpace(strings.TrimPrefix(line, HeaderPrefix))})
			cur = &sections[len(sections)-1]
		case strings.HasPrefix(line, SmartHeaderPrefix):
			sections = append(sections, Section{Heading: strings.TrimSpace(strings.TrimPrefix(line, SmartHeaderPrefix))})
			cur = &sections[len(sections)-1]
		case strings.HasPrefix(line, BulletPrefix) && cur != nil:
			cur.Bullets = append(cur.Bullets, strings.TrimPrefix(line, BulletPrefix))
		}
	}

	return sections
}

// CardsFromNotes turns each notes section into a flashcard holding the
// first three bullets.
func CardsFromNotes(text string) []entities.Flashcard {
	sections := ParseNotes(text)
	cards := make([]entities.Flashcard, 0, len(sections))
	for _, s := range sections {
		points := s.Bullets
		if len(points) > entities.MaxFlashcardPoints {
			points = points[:entities.MaxFlashcardPoints]
		}
		cards = append(cards, entities.Flashcard{
			Title:  s.Heading,
			Points: append([]string(nil), points...),
		})
	}
	return cards
}

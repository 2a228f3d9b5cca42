package notes

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const (
	// DefaultMaxSentences caps bullets per topic in structured notes
	DefaultMaxSentences = 5
	// smartPoints caps key points per topic in smart notes
	smartPoints = 3

	HeaderPrefix      = "## "
	SmartHeaderPrefix = "# "
	BulletPrefix      = "• "
	InsightPrefix     = "→ "
)

// GenerateStructuredNotes renders one section per topic that has sentences:
// a blank line, an upper-cased "## " header and up to maxSentences bullets.
func GenerateStructuredNotes(m *entities.TopicMap, maxSentences int) string {
	if !m.HasContent() {
		return entities.NoTopicsMessage
	}
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	var lines []string
	for _, e := range m.Entries {
		if len(e.Sentences) == 0 {
			continue
		}

		lines = append(lines, "\n"+HeaderPrefix+strings.ToUpper(e.Topic))
		for i, s := range e.Sentences {
			if i == maxSentences {
				break
			}
			lines = append(lines, BulletPrefix+s)
		}
	}

	return strings.Join(lines, "\n")
}

// SmartNotes renders a titled section per matching topic with up to three
// key points and the first match repeated as an insight.
func SmartNotes(sentences, topics []string) string {
	if len(sentences) == 0 || len(topics) == 0 {
		return entities.NoTopicsMessage
	}

	title := cases.Title(language.English)

	var lines []string
	for _, topic := range topics {
		related := relatedSentences(sentences, topic)
		if len(related) == 0 {
			continue
		}

		lines = append(lines, "\n"+SmartHeaderPrefix+title.String(topic))
		lines = append(lines, "Key Points:")
		for i, r := range related {
			if i == smartPoints {
				break
			}
			lines = append(lines, BulletPrefix+r)
		}
		lines = append(lines, "Insight:")
		lines = append(lines, InsightPrefix+related[0])
	}

	if len(lines) == 0 {
		return entities.NoTopicsMessage
	}
	return strings.Join(lines, "\n")
}

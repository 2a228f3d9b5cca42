package notes

import (
	"strings"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// BuildTopicMap assigns every sentence to each topic it contains
// (case-insensitive substring). Topics keep their input order, topics
// without matches stay in the map with no sentences, and a sentence may
// appear under several topics.
func BuildTopicMap(sentences, topics []string) *entities.TopicMap {
	m := &entities.TopicMap{Entries: []entities.TopicEntry{}}
	if len(sentences) == 0 || len(topics) == 0 {
		return m
	}

	index := make(map[string]int, len(topics))
	for _, topic := range topics {
		if _, dup := index[topic]; dup {
			continue
		}
		index[topic] = len(m.Entries)
		m.Entries = append(m.Entries, entities.TopicEntry{Topic: topic, Sentences: []string{}})
	}

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for i := range m.Entries {
			if strings.Contains(lower, strings.ToLower(m.Entries[i].Topic)) {
				m.Entries[i].Sentences = append(m.Entries[i].Sentences, sentence)
			}
		}
	}

	return m
}

// relatedSentences returns sentences containing topic, in order
func relatedSentences(sentences []string, topic string) []string {
	needle := strings.ToLower(topic)
	var out []string
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

package corpus

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
)

// SubjectData is everything the store holds about one subject.
type SubjectData struct {
	Name      string
	Resources []string
	Topics    []TopicData
}

// TopicData holds one topic's passages and quiz items.
type TopicData struct {
	Name     string
	Passages []domain.ContentItem
	Quiz     []domain.QuizItem
}

// TopicRef names a topic together with its subject.
type TopicRef struct {
	Subject string
	Topic   string
}

// Store is the in-memory Content Store. Subject and topic lookups ignore
// case. A Store is built with Add and must not be modified once it is shared.
type Store struct {
	subjects []*SubjectData
	index    map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Add validates data and merges it into the store. Topics of an existing
// subject are appended; nothing is added when validation fails.
func (s *Store) Add(data SubjectData) error {
	if key(data.Name) == "" {
		return fmt.Errorf("subject name is required")
	}

	existing := s.subject(data.Name)
	topicSeen := make(map[string]bool)
	questionSeen := make(map[string]bool)
	if existing != nil {
		for _, t := range existing.Topics {
			topicSeen[key(t.Name)] = true
			for _, q := range t.Quiz {
				questionSeen[key(q.Question)] = true
			}
		}
	}

	for _, t := range data.Topics {
		if key(t.Name) == "" {
			return fmt.Errorf("subject %q: topic name is required", data.Name)
		}
		if topicSeen[key(t.Name)] {
			return fmt.Errorf("subject %q: duplicate topic %q", data.Name, t.Name)
		}
		topicSeen[key(t.Name)] = true

		for i := range t.Quiz {
			q := &t.Quiz[i]
			if err := q.Validate(); err != nil {
				return fmt.Errorf("subject %q topic %q: %w", data.Name, t.Name, err)
			}
			if questionSeen[key(q.Question)] {
				return fmt.Errorf("subject %q: duplicate question %q", data.Name, q.Question)
			}
			questionSeen[key(q.Question)] = true
		}
	}

	if existing == nil {
		existing = &SubjectData{Name: strings.TrimSpace(data.Name)}
		s.index[key(data.Name)] = len(s.subjects)
		s.subjects = append(s.subjects, existing)
	}
	existing.Resources = append(existing.Resources, data.Resources...)
	for _, t := range data.Topics {
		td := TopicData{Name: strings.TrimSpace(t.Name)}
		for _, p := range t.Passages {
			td.Passages = append(td.Passages, domain.NewContentItem(existing.Name, td.Name, p.Text))
		}
		for _, q := range t.Quiz {
			q.Subject, q.Topic = existing.Name, td.Name
			q.Options = append([]string(nil), q.Options...)
			td.Quiz = append(td.Quiz, q)
		}
		existing.Topics = append(existing.Topics, td)
	}
	return nil
}

func (s *Store) subject(name string) *SubjectData {
	i, ok := s.index[key(name)]
	if !ok {
		return nil
	}
	return s.subjects[i]
}

func (s *Store) topic(subject, topic string) *TopicData {
	sd := s.subject(subject)
	if sd == nil {
		return nil
	}
	for i := range sd.Topics {
		if key(sd.Topics[i].Name) == key(topic) {
			return &sd.Topics[i]
		}
	}
	return nil
}

// Subjects returns subject names in load order.
func (s *Store) Subjects() []string {
	out := make([]string, len(s.subjects))
	for i, sd := range s.subjects {
		out[i] = sd.Name
	}
	return out
}

// CanonicalSubject resolves a subject name to its stored spelling.
func (s *Store) CanonicalSubject(name string) (string, bool) {
	sd := s.subject(name)
	if sd == nil {
		return "", false
	}
	return sd.Name, true
}

// CanonicalTopic resolves a topic name under subject to its stored spelling.
func (s *Store) CanonicalTopic(subject, topic string) (string, bool) {
	td := s.topic(subject, topic)
	if td == nil {
		return "", false
	}
	return td.Name, true
}

// HasTopic reports whether topic exists under subject.
func (s *Store) HasTopic(subject, topic string) bool {
	return s.topic(subject, topic) != nil
}

// Topics returns the topics of subject in load order.
func (s *Store) Topics(subject string) ([]string, bool) {
	sd := s.subject(subject)
	if sd == nil {
		return nil, false
	}
	out := make([]string, len(sd.Topics))
	for i, t := range sd.Topics {
		out[i] = t.Name
	}
	return out, true
}

// AllTopics returns every topic of every subject in load order.
func (s *Store) AllTopics() []TopicRef {
	var out []TopicRef
	for _, sd := range s.subjects {
		for _, t := range sd.Topics {
			out = append(out, TopicRef{Subject: sd.Name, Topic: t.Name})
		}
	}
	return out
}

// Items returns the passages of one topic.
func (s *Store) Items(subject, topic string) []domain.ContentItem {
	td := s.topic(subject, topic)
	if td == nil {
		return nil
	}
	return append([]domain.ContentItem(nil), td.Passages...)
}

// SubjectItems returns every passage of subject.
func (s *Store) SubjectItems(subject string) []domain.ContentItem {
	sd := s.subject(subject)
	if sd == nil {
		return nil
	}
	var out []domain.ContentItem
	for _, t := range sd.Topics {
		out = append(out, t.Passages...)
	}
	return out
}

// Resources returns the study resources listed for subject.
func (s *Store) Resources(subject string) []string {
	sd := s.subject(subject)
	if sd == nil {
		return nil
	}
	return append([]string(nil), sd.Resources...)
}

// QuizItems returns the whole labeled quiz corpus.
func (s *Store) QuizItems() []domain.QuizItem {
	var out []domain.QuizItem
	for _, sd := range s.subjects {
		for _, t := range sd.Topics {
			out = append(out, t.Quiz...)
		}
	}
	return out
}

// QuizItemsFor returns the quiz items of the given topics of subject, in
// topic order. Unknown topics contribute nothing.
func (s *Store) QuizItemsFor(subject string, topics []string) []domain.QuizItem {
	var out []domain.QuizItem
	for _, name := range topics {
		if td := s.topic(subject, name); td != nil {
			out = append(out, td.Quiz...)
		}
	}
	return out
}

// Subject returns a copy of one subject's data.
func (s *Store) Subject(name string) (SubjectData, bool) {
	sd := s.subject(name)
	if sd == nil {
		return SubjectData{}, false
	}
	out := SubjectData{Name: sd.Name, Resources: append([]string(nil), sd.Resources...)}
	for _, t := range sd.Topics {
		out.Topics = append(out.Topics, TopicData{
			Name:     t.Name,
			Passages: append([]domain.ContentItem(nil), t.Passages...),
			Quiz:     append([]domain.QuizItem(nil), t.Quiz...),
		})
	}
	return out, true
}

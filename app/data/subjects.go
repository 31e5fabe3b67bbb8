package data

import (
	"strings"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

// Subjects returns the stored subjects in insertion order.
func (r *Repository) Subjects() []models.Subject {
	subjects := []models.Subject{}
	r.store.Read(subjectsKey, &subjects)
	return subjects
}

// ReplaceSubjects overwrites the whole collection. It is the only mutation
// primitive; everything else below is expressed through it.
func (r *Repository) ReplaceSubjects(subjects []models.Subject) {
	r.store.Write(subjectsKey, subjects)
}

// AddSubject appends a new subject. An empty name makes the call a no-op.
func (r *Repository) AddSubject(name, color string) (models.Subject, bool) {
	if strings.TrimSpace(name) == "" {
		return models.Subject{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	subject := models.Subject{
		ID:     NewID(),
		Name:   name,
		Color:  color,
		Topics: []models.Topic{},
	}
	r.ReplaceSubjects(append(r.Subjects(), subject))
	return subject, true
}

// UpdateSubject renames/recolors the subject with the given id.
func (r *Repository) UpdateSubject(id, name, color string) (models.Subject, bool) {
	if strings.TrimSpace(name) == "" {
		return models.Subject{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := r.Subjects()
	for i := range subjects {
		if subjects[i].ID == id {
			subjects[i].Name = name
			subjects[i].Color = color
			r.ReplaceSubjects(subjects)
			return subjects[i], true
		}
	}
	return models.Subject{}, false
}

// DeleteSubject removes the subject and, with it, all of its topics.
// Assignments and timetable tasks referencing the subject keep their
// subjectId; they render as "Uncategorized" from then on.
func (r *Repository) DeleteSubject(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := r.Subjects()
	remaining := make([]models.Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(subjects) {
		return false
	}
	r.ReplaceSubjects(remaining)
	return true
}

// AddTopic appends a topic to the given subject.
func (r *Repository) AddTopic(subjectID, name string) (models.Topic, bool) {
	if strings.TrimSpace(name) == "" {
		return models.Topic{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := r.Subjects()
	for i := range subjects {
		if subjects[i].ID == subjectID {
			topic := models.Topic{ID: NewID(), Name: name}
			subjects[i].Topics = append(subjects[i].Topics, topic)
			r.ReplaceSubjects(subjects)
			return topic, true
		}
	}
	return models.Topic{}, false
}

// ToggleTopic flips a topic's completed flag.
func (r *Repository) ToggleTopic(subjectID, topicID string) (models.Topic, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := r.Subjects()
	for i := range subjects {
		if subjects[i].ID != subjectID {
			continue
		}
		for j := range subjects[i].Topics {
			if subjects[i].Topics[j].ID == topicID {
				subjects[i].Topics[j].Completed = !subjects[i].Topics[j].Completed
				r.ReplaceSubjects(subjects)
				return subjects[i].Topics[j], true
			}
		}
	}
	return models.Topic{}, false
}

// DeleteTopic removes a topic from its subject.
func (r *Repository) DeleteTopic(subjectID, topicID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := r.Subjects()
	for i := range subjects {
		if subjects[i].ID != subjectID {
			continue
		}
		topics := subjects[i].Topics
		remaining := make([]models.Topic, 0, len(topics))
		for _, t := range topics {
			if t.ID != topicID {
				remaining = append(remaining, t)
			}
		}
		if len(remaining) == len(topics) {
			return false
		}
		subjects[i].Topics = remaining
		r.ReplaceSubjects(subjects)
		return true
	}
	return false
}

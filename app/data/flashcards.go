package data

import (
	"strings"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

// FlashcardSets returns the stored sets in insertion order.
func (r *Repository) FlashcardSets() []models.FlashcardSet {
	sets := []models.FlashcardSet{}
	r.store.Read(flashcardsKey, &sets)
	return sets
}

// ReplaceFlashcardSets overwrites the whole collection.
func (r *Repository) ReplaceFlashcardSets(sets []models.FlashcardSet) {
	r.store.Write(flashcardsKey, sets)
}

// AddFlashcardSet creates an empty set.
func (r *Repository) AddFlashcardSet(title string) (models.FlashcardSet, bool) {
	if strings.TrimSpace(title) == "" {
		return models.FlashcardSet{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	set := models.FlashcardSet{
		ID:    NewID(),
		Title: title,
		Cards: []models.Flashcard{},
	}
	r.ReplaceFlashcardSets(append(r.FlashcardSets(), set))
	return set, true
}

// RenameFlashcardSet changes a set's title.
func (r *Repository) RenameFlashcardSet(id, title string) (models.FlashcardSet, bool) {
	if strings.TrimSpace(title) == "" {
		return models.FlashcardSet{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := r.FlashcardSets()
	for i := range sets {
		if sets[i].ID == id {
			sets[i].Title = title
			r.ReplaceFlashcardSets(sets)
			return sets[i], true
		}
	}
	return models.FlashcardSet{}, false
}

// DeleteFlashcardSet removes a set and all of its cards.
func (r *Repository) DeleteFlashcardSet(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := r.FlashcardSets()
	remaining := make([]models.FlashcardSet, 0, len(sets))
	for _, s := range sets {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(sets) {
		return false
	}
	r.ReplaceFlashcardSets(remaining)
	return true
}

// AddFlashcard appends a card to a set. Both sides are required.
func (r *Repository) AddFlashcard(setID, question, answer string) (models.Flashcard, bool) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return models.Flashcard{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := r.FlashcardSets()
	for i := range sets {
		if sets[i].ID == setID {
			card := models.Flashcard{ID: NewID(), Question: question, Answer: answer}
			sets[i].Cards = append(sets[i].Cards, card)
			r.ReplaceFlashcardSets(sets)
			return card, true
		}
	}
	return models.Flashcard{}, false
}

// DeleteFlashcard removes a card from its set.
func (r *Repository) DeleteFlashcard(setID, cardID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := r.FlashcardSets()
	for i := range sets {
		if sets[i].ID != setID {
			continue
		}
		cards := sets[i].Cards
		remaining := make([]models.Flashcard, 0, len(cards))
		for _, card := range cards {
			if card.ID != cardID {
				remaining = append(remaining, card)
			}
		}
		if len(remaining) == len(cards) {
			return false
		}
		sets[i].Cards = remaining
		r.ReplaceFlashcardSets(sets)
		return true
	}
	return false
}

package data

import (
	"strings"
	"time"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

// Assignments returns the stored assignments in insertion order.
func (r *Repository) Assignments() []models.Assignment {
	assignments := []models.Assignment{}
	r.store.Read(assignmentsKey, &assignments)
	return assignments
}

// ReplaceAssignments overwrites the whole collection.
func (r *Repository) ReplaceAssignments(assignments []models.Assignment) {
	r.store.Write(assignmentsKey, assignments)
}

func validDate(date string) bool {
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}

// AddAssignment appends a new pending assignment. A blank title or an
// unparseable due date makes the call a no-op. subjectID is stored as
// given and never integrity-checked.
func (r *Repository) AddAssignment(title, subjectID, dueDate string) (models.Assignment, bool) {
	if strings.TrimSpace(title) == "" || !validDate(dueDate) {
		return models.Assignment{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	assignment := models.Assignment{
		ID:        NewID(),
		Title:     title,
		SubjectID: subjectID,
		DueDate:   dueDate,
		Status:    models.AssignmentPending,
	}
	r.ReplaceAssignments(append(r.Assignments(), assignment))
	return assignment, true
}

// UpdateAssignment edits title, subject and due date, leaving status alone.
func (r *Repository) UpdateAssignment(id, title, subjectID, dueDate string) (models.Assignment, bool) {
	if strings.TrimSpace(title) == "" || !validDate(dueDate) {
		return models.Assignment{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments := r.Assignments()
	for i := range assignments {
		if assignments[i].ID == id {
			assignments[i].Title = title
			assignments[i].SubjectID = subjectID
			assignments[i].DueDate = dueDate
			r.ReplaceAssignments(assignments)
			return assignments[i], true
		}
	}
	return models.Assignment{}, false
}

// SetAssignmentStatus stores Pending or Completed. Overdue is a derived
// display state and is rejected here.
func (r *Repository) SetAssignmentStatus(id string, status models.AssignmentStatus) (models.Assignment, bool) {
	if status != models.AssignmentPending && status != models.AssignmentCompleted {
		return models.Assignment{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments := r.Assignments()
	for i := range assignments {
		if assignments[i].ID == id {
			assignments[i].Status = status
			r.ReplaceAssignments(assignments)
			return assignments[i], true
		}
	}
	return models.Assignment{}, false
}

// DeleteAssignment removes the assignment with the given id.
func (r *Repository) DeleteAssignment(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments := r.Assignments()
	remaining := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(assignments) {
		return false
	}
	r.ReplaceAssignments(remaining)
	return true
}

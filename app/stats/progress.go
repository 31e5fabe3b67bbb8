// Package stats holds the pure derived-state computations over the
// planner's collections: progress percentages, effective assignment
// status, sorted views and timetable grid placement. Nothing here
// mutates state or touches storage.
package stats

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

// UncategorizedSubject is displayed for weak subject references that no
// longer resolve. A dangling reference is not an error.
const UncategorizedSubject = "Uncategorized"

// SubjectProgress is the completed share of a subject's topics as a
// rounded percentage, 0 for a subject with no topics.
func SubjectProgress(s models.Subject) int {
	if len(s.Topics) == 0 {
		return 0
	}
	completed := 0
	for _, t := range s.Topics {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(s.Topics))))
}

// OverallProgress is the arithmetic mean of all subjects' progress, 0
// when there are no subjects.
func OverallProgress(subjects []models.Subject) float64 {
	if len(subjects) == 0 {
		return 0
	}
	sum := 0
	for _, s := range subjects {
		sum += SubjectProgress(s)
	}
	return float64(sum) / float64(len(subjects))
}

// EffectiveStatus derives the display status of an assignment for the
// given moment: Completed as stored, otherwise Overdue once the due date
// lies strictly before today (date-only comparison), otherwise Pending.
func EffectiveStatus(a models.Assignment, now time.Time) models.AssignmentStatus {
	if a.Status == models.AssignmentCompleted {
		return models.AssignmentCompleted
	}
	due, err := time.ParseInLocation(models.DateLayout, a.DueDate, now.Location())
	if err != nil {
		return models.AssignmentPending
	}
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return models.AssignmentOverdue
	}
	return models.AssignmentPending
}

// UpcomingAssignments returns the non-completed assignments closest to
// their due date, at most limit of them. Ties keep insertion order.
func UpcomingAssignments(assignments []models.Assignment, limit int) []models.Assignment {
	upcoming := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status != models.AssignmentCompleted {
			upcoming = append(upcoming, a)
		}
	}
	// Dates are stored as YYYY-MM-DD, so the string order is the
	// chronological order.
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// AssignmentCounts summarizes assignments for the analytics screen.
type AssignmentCounts struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// CountAssignments tallies assignments by their effective status.
func CountAssignments(assignments []models.Assignment, now time.Time) AssignmentCounts {
	var counts AssignmentCounts
	for _, a := range assignments {
		switch EffectiveStatus(a, now) {
		case models.AssignmentCompleted:
			counts.Completed++
		case models.AssignmentOverdue:
			counts.Overdue++
		default:
			counts.Pending++
		}
	}
	return counts
}

// SortKey selects the subject ordering.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByProgress SortKey = "progress"
)

// SortSubjects returns a sorted copy. Name ordering is locale-aware, so
// "algebra" sorts before "Biology". The sort is stable: ties keep the
// original relative order.
func SortSubjects(subjects []models.Subject, key SortKey, descending bool) []models.Subject {
	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)

	coll := collate.New(language.English)
	sort.SliceStable(sorted, func(i, j int) bool {
		var cmp int
		if key == SortByProgress {
			cmp = SubjectProgress(sorted[i]) - SubjectProgress(sorted[j])
		} else {
			cmp = coll.CompareString(sorted[i].Name, sorted[j].Name)
		}
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// SubjectByID resolves a weak subject reference.
func SubjectByID(subjects []models.Subject, id string) (models.Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return models.Subject{}, false
}

// SubjectName resolves a weak subject reference to a display name,
// falling back to UncategorizedSubject.
func SubjectName(subjects []models.Subject, id string) string {
	if s, ok := SubjectByID(subjects, id); ok {
		return s.Name
	}
	return UncategorizedSubject
}

var motivationalQuotes = []string{
	"The secret of getting ahead is getting started.",
	"Believe you can and you're halfway there.",
	"Don't watch the clock; do what it does. Keep going.",
	"The future depends on what you do today.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"The only way to do great work is to love what you do.",
	"It does not matter how slowly you go as long as you do not stop.",
}

// Quote picks a motivational quote for the dashboard.
func Quote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}

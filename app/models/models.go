package models

// DateLayout is the stored form of assignment due dates. Due dates are
// calendar dates; time of day is never stored.
const DateLayout = "2006-01-02"

// AssignmentStatus is the stored status of an assignment. Overdue is never
// stored; it is derived from the due date when the assignment is read.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "Pending"
	AssignmentCompleted AssignmentStatus = "Completed"
	AssignmentOverdue   AssignmentStatus = "Overdue"
)

// Topic is a gradable unit of study content. A topic belongs to exactly one
// subject and is deleted with it.
type Topic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Subject is a top-level study category owning an ordered list of topics.
type Subject struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Topics []Topic `json:"topics"`
}

// Assignment is a due-dated task. SubjectID is a weak reference: the subject
// may have been deleted, in which case consumers display "Uncategorized".
type Assignment struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	SubjectID string           `json:"subjectId"`
	DueDate   string           `json:"dueDate"`
	Status    AssignmentStatus `json:"status"`
}

// Flashcard is a question/answer pair inside a set.
type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardSet is a named, ordered collection of flashcards.
type FlashcardSet struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Cards []Flashcard `json:"cards"`
}

// Task is a weekly timetable entry. Like assignments, its SubjectID is a
// weak reference and is never integrity-checked.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Days lists the timetable columns in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// PomodoroSettings is the persisted configuration of the pomodoro timer
// screen. A long break follows every CyclesPerLongBreak completed work
// cycles.
type PomodoroSettings struct {
	WorkMinutes        int `json:"workMinutes"`
	ShortBreakMinutes  int `json:"shortBreakMinutes"`
	LongBreakMinutes   int `json:"longBreakMinutes"`
	CyclesPerLongBreak int `json:"cyclesPerLongBreak"`
}

// DefaultPomodoroSettings returns the classic 25/5/15 configuration.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkMinutes:        25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		CyclesPerLongBreak: 4,
	}
}

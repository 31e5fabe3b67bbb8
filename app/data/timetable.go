package data

import (
	"strings"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

func validDay(day string) bool {
	for _, d := range models.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Tasks returns the stored timetable entries in insertion order.
func (r *Repository) Tasks() []models.Task {
	tasks := []models.Task{}
	r.store.Read(timetableKey, &tasks)
	return tasks
}

// ReplaceTasks overwrites the whole collection.
func (r *Repository) ReplaceTasks(tasks []models.Task) {
	r.store.Write(timetableKey, tasks)
}

// AddTask appends a timetable entry. Title and a known weekday are
// required. Times are stored as given; entries off the hourly grid are
// kept but never placed on it.
func (r *Repository) AddTask(title, subjectID, day, startTime, endTime string) (models.Task, bool) {
	if strings.TrimSpace(title) == "" || !validDay(day) {
		return models.Task{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	task := models.Task{
		ID:        NewID(),
		Title:     title,
		SubjectID: subjectID,
		Day:       day,
		StartTime: startTime,
		EndTime:   endTime,
	}
	r.ReplaceTasks(append(r.Tasks(), task))
	return task, true
}

// UpdateTask edits a timetable entry in place.
func (r *Repository) UpdateTask(id, title, subjectID, day, startTime, endTime string) (models.Task, bool) {
	if strings.TrimSpace(title) == "" || !validDay(day) {
		return models.Task{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.Tasks()
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Title = title
			tasks[i].SubjectID = subjectID
			tasks[i].Day = day
			tasks[i].StartTime = startTime
			tasks[i].EndTime = endTime
			r.ReplaceTasks(tasks)
			return tasks[i], true
		}
	}
	return models.Task{}, false
}

// DeleteTask removes the entry with the given id.
func (r *Repository) DeleteTask(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.Tasks()
	remaining := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(tasks) {
		return false
	}
	r.ReplaceTasks(remaining)
	return true
}

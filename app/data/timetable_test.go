package data

import "testing"

func TestAddTaskValidation(t *testing.T) {
	repo := newTestRepo(t)

	if _, ok := repo.AddTask("", "s1", "Monday", "09:00", "10:00"); ok {
		t.Fatal("blank title was accepted")
	}
	if _, ok := repo.AddTask("Revision", "s1", "Funday", "09:00", "10:00"); ok {
		t.Fatal("unknown weekday was accepted")
	}

	// Unaligned times are stored as given; the grid simply never shows
	// the task.
	task, ok := repo.AddTask("Revision", "s1", "Monday", "09:30", "10:15")
	if !ok {
		t.Fatal("unaligned times were rejected at the repository")
	}
	if task.StartTime != "09:30" {
		t.Fatalf("start time rewritten to %q", task.StartTime)
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	repo := newTestRepo(t)

	task, _ := repo.AddTask("Revision", "s1", "Monday", "09:00", "10:00")

	updated, ok := repo.UpdateTask(task.ID, "Mock exam", "s2", "Friday", "14:00", "16:00")
	if !ok {
		t.Fatal("UpdateTask did not find the task")
	}
	if updated.Day != "Friday" || updated.SubjectID != "s2" || updated.EndTime != "16:00" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if !repo.DeleteTask(task.ID) {
		t.Fatal("DeleteTask did not find the task")
	}
	if got := len(repo.Tasks()); got != 0 {
		t.Fatalf("%d tasks left after delete", got)
	}
}

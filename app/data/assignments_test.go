package data

import (
	"testing"
	"time"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

func TestAddAssignmentDefaultsToPending(t *testing.T) {
	repo := newTestRepo(t)

	assignment, ok := repo.AddAssignment("Essay", "missing-id", "2026-09-01")
	if !ok {
		t.Fatal("AddAssignment rejected a valid assignment")
	}
	if assignment.Status != models.AssignmentPending {
		t.Fatalf("new assignment status = %q, want Pending", assignment.Status)
	}
}

func TestAddAssignmentValidation(t *testing.T) {
	repo := newTestRepo(t)

	if _, ok := repo.AddAssignment("", "s1", "2026-09-01"); ok {
		t.Fatal("blank title was accepted")
	}
	if _, ok := repo.AddAssignment("Essay", "s1", "tomorrow"); ok {
		t.Fatal("unparseable due date was accepted")
	}
	if got := len(repo.Assignments()); got != 0 {
		t.Fatalf("collection changed by rejected adds: %d assignments", got)
	}
}

func TestOverdueAssignmentWithDanglingSubject(t *testing.T) {
	repo := newTestRepo(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	assignment, ok := repo.AddAssignment("Essay", "missing-id", yesterday)
	if !ok {
		t.Fatal("AddAssignment failed")
	}

	if got := stats.EffectiveStatus(assignment, time.Now()); got != models.AssignmentOverdue {
		t.Fatalf("effective status = %q, want Overdue", got)
	}
	if name := stats.SubjectName(repo.Subjects(), assignment.SubjectID); name != stats.UncategorizedSubject {
		t.Fatalf("subject name = %q, want %q", name, stats.UncategorizedSubject)
	}
}

func TestSetAssignmentStatus(t *testing.T) {
	repo := newTestRepo(t)

	assignment, _ := repo.AddAssignment("Essay", "", "2026-09-01")

	updated, ok := repo.SetAssignmentStatus(assignment.ID, models.AssignmentCompleted)
	if !ok {
		t.Fatal("SetAssignmentStatus did not find the assignment")
	}
	if updated.Status != models.AssignmentCompleted {
		t.Fatalf("status = %q, want Completed", updated.Status)
	}

	// Overdue is derived, never stored.
	if _, ok := repo.SetAssignmentStatus(assignment.ID, models.AssignmentOverdue); ok {
		t.Fatal("storing Overdue was accepted")
	}
	stored := repo.Assignments()[0]
	if stored.Status != models.AssignmentCompleted {
		t.Fatalf("stored status changed to %q", stored.Status)
	}
}

func TestUpdateAndDeleteAssignment(t *testing.T) {
	repo := newTestRepo(t)

	assignment, _ := repo.AddAssignment("Essay", "", "2026-09-01")
	other, _ := repo.AddAssignment("Lab report", "", "2026-09-02")

	updated, ok := repo.UpdateAssignment(assignment.ID, "Final essay", "s1", "2026-09-03")
	if !ok {
		t.Fatal("UpdateAssignment did not find the assignment")
	}
	if updated.Title != "Final essay" || updated.SubjectID != "s1" || updated.DueDate != "2026-09-03" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if !repo.DeleteAssignment(assignment.ID) {
		t.Fatal("DeleteAssignment did not find the assignment")
	}
	remaining := repo.Assignments()
	if len(remaining) != 1 || remaining[0].ID != other.ID {
		t.Fatalf("unexpected assignments after delete: %+v", remaining)
	}
	if repo.DeleteAssignment(assignment.ID) {
		t.Fatal("deleting a missing assignment reported success")
	}
}

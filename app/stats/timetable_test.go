package stats

import (
	"testing"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

func TestTimeSlotsGrid(t *testing.T) {
	if len(TimeSlots) != 15 {
		t.Fatalf("grid has %d slots, want 15", len(TimeSlots))
	}
	if TimeSlots[0] != "07:00" || TimeSlots[14] != "21:00" {
		t.Fatalf("grid bounds are %q..%q", TimeSlots[0], TimeSlots[14])
	}
	if got := SlotIndex("09:00"); got != 2 {
		t.Fatalf("SlotIndex(09:00) = %d, want 2", got)
	}
	if got := SlotIndex("09:30"); got != -1 {
		t.Fatalf("SlotIndex(09:30) = %d, want -1", got)
	}
}

func TestPlaceTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Revision", Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
		{ID: "2", Title: "Unaligned", Day: "Tuesday", StartTime: "09:30", EndTime: "10:30"},
		{ID: "3", Title: "Inverted", Day: "Wednesday", StartTime: "11:00", EndTime: "09:00"},
		{ID: "4", Title: "Bad day", Day: "Someday", StartTime: "09:00", EndTime: "10:00"},
		{ID: "5", Title: "Late", Day: "Sunday", StartTime: "20:00", EndTime: "21:00"},
	}

	placements := PlaceTasks(tasks)
	if len(placements) != 2 {
		t.Fatalf("placed %d tasks, want 2", len(placements))
	}

	first := placements[0]
	if first.Task.ID != "1" || first.Day != 0 || first.Slot != 2 || first.Span != 2 {
		t.Fatalf("unexpected placement: %+v", first)
	}

	last := placements[1]
	if last.Task.ID != "5" || last.Day != 6 || last.Slot != 13 || last.Span != 1 {
		t.Fatalf("unexpected placement: %+v", last)
	}
}

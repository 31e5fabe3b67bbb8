package stats

import (
	"fmt"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

// TimeSlots is the fixed hourly grid of the timetable, 07:00 through
// 21:00.
var TimeSlots = makeTimeSlots()

func makeTimeSlots() []string {
	slots := make([]string, 15)
	for i := range slots {
		slots[i] = fmt.Sprintf("%02d:00", i+7)
	}
	return slots
}

// SlotIndex locates an HH:MM time on the grid, -1 when it does not fall
// on a slot boundary.
func SlotIndex(t string) int {
	for i, slot := range TimeSlots {
		if slot == t {
			return i
		}
	}
	return -1
}

// Placement positions one task on the weekly grid.
type Placement struct {
	Task models.Task `json:"task"`
	Day  int         `json:"day"`
	Slot int         `json:"slot"`
	Span int         `json:"span"`
}

// PlaceTasks maps tasks onto the grid. Tasks whose day is unknown or
// whose start/end times do not line up with slot boundaries (or do not
// span at least one slot) are silently skipped, never an error.
func PlaceTasks(tasks []models.Task) []Placement {
	dayIndex := make(map[string]int, len(models.Days))
	for i, d := range models.Days {
		dayIndex[d] = i
	}

	placements := make([]Placement, 0, len(tasks))
	for _, task := range tasks {
		day, ok := dayIndex[task.Day]
		if !ok {
			continue
		}
		start := SlotIndex(task.StartTime)
		end := SlotIndex(task.EndTime)
		if start == -1 || end == -1 || end <= start {
			continue
		}
		placements = append(placements, Placement{
			Task: task,
			Day:  day,
			Slot: start,
			Span: end - start,
		})
	}
	return placements
}

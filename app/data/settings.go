package data

import "github.com/sskrishnan03/krishnan-study-planner/app/models"

// DarkMode reports the UI-wide theme flag, defaulting to light.
func (r *Repository) DarkMode() bool {
	enabled := false
	r.store.Read(darkModeKey, &enabled)
	return enabled
}

// SetDarkMode persists the theme flag.
func (r *Repository) SetDarkMode(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Write(darkModeKey, enabled)
}

// Pomodoro returns the stored timer configuration or the 25/5/15 default.
func (r *Repository) Pomodoro() models.PomodoroSettings {
	settings := models.DefaultPomodoroSettings()
	r.store.Read(pomodoroKey, &settings)
	return settings
}

// SetPomodoro persists the timer configuration. Non-positive durations or
// cycle counts make the call a no-op.
func (r *Repository) SetPomodoro(settings models.PomodoroSettings) bool {
	if settings.WorkMinutes <= 0 || settings.ShortBreakMinutes <= 0 ||
		settings.LongBreakMinutes <= 0 || settings.CyclesPerLongBreak <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Write(pomodoroKey, settings)
	return true
}

// ResetPomodoro restores the default configuration and returns it.
func (r *Repository) ResetPomodoro() models.PomodoroSettings {
	settings := models.DefaultPomodoroSettings()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Write(pomodoroKey, settings)
	return settings
}

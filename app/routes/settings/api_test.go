package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/store"
)

func newTestApp(t *testing.T) (*fiber.App, *data.Repository) {
	t.Helper()
	backend, err := store.NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	repo := data.NewRepository(store.New(backend))
	app := fiber.New()
	SetupSettingsRoutes(app, repo)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestDarkModeEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/settings/darkmode", nil)
	var out struct {
		DarkMode bool `json:"darkMode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if out.DarkMode {
		t.Fatal("dark mode should default to off")
	}

	resp = doJSON(t, app, "PUT", "/api/settings/darkmode", fiber.Map{"darkMode": true})
	if resp.StatusCode != 200 {
		t.Fatalf("put status = %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/settings/darkmode", nil)
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if !out.DarkMode {
		t.Fatal("dark mode toggle not persisted")
	}
}

func TestPomodoroEndpoints(t *testing.T) {
	app, repo := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/settings/pomodoro", nil)
	var out struct {
		Pomodoro models.PomodoroSettings `json:"pomodoro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if out.Pomodoro != models.DefaultPomodoroSettings() {
		t.Fatalf("pomodoro default = %+v", out.Pomodoro)
	}

	custom := models.PomodoroSettings{WorkMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, CyclesPerLongBreak: 2}
	resp = doJSON(t, app, "PUT", "/api/settings/pomodoro", custom)
	if resp.StatusCode != 200 {
		t.Fatalf("put status = %d", resp.StatusCode)
	}

	// Non-positive values stay a 400 and leave the stored value alone.
	resp = doJSON(t, app, "PUT", "/api/settings/pomodoro", fiber.Map{"workMinutes": 0})
	if resp.StatusCode != 400 {
		t.Fatalf("invalid put status = %d, want 400", resp.StatusCode)
	}
	if got := repo.Pomodoro(); got != custom {
		t.Fatalf("stored settings changed by a rejected write: %+v", got)
	}

	resp = doJSON(t, app, "POST", "/api/settings/pomodoro/reset", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}
	if got := repo.Pomodoro(); got != models.DefaultPomodoroSettings() {
		t.Fatalf("pomodoro after reset = %+v", got)
	}
}

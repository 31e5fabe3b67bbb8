package subjects

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
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
	SetupSubjectsRoutes(app, repo)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestCreateAndListSubjects(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/subjects/", fiber.Map{"name": "Math", "color": "#111111"})
	if resp.StatusCode != 201 {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/subjects/", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var out struct {
		Subjects []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Progress int    `json:"progress"`
		} `json:"subjects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(out.Subjects) != 1 || out.Subjects[0].Name != "Math" || out.Subjects[0].Progress != 0 {
		t.Fatalf("unexpected list: %+v", out.Subjects)
	}
}

func TestCreateSubjectRequiresName(t *testing.T) {
	app, repo := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/subjects/", fiber.Map{"color": "#111111"})
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if got := len(repo.Subjects()); got != 0 {
		t.Fatalf("rejected create still stored %d subjects", got)
	}
}

func TestListSubjectsSorted(t *testing.T) {
	app, repo := newTestApp(t)
	repo.AddSubject("Biology", "#1")
	repo.AddSubject("algebra", "#2")
	repo.AddSubject("Chemistry", "#3")

	resp := doJSON(t, app, "GET", "/api/subjects/?sort=name&order=asc", nil)
	var out struct {
		Subjects []struct {
			Name string `json:"name"`
		} `json:"subjects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	want := []string{"algebra", "Biology", "Chemistry"}
	for i, name := range want {
		if out.Subjects[i].Name != name {
			t.Fatalf("subjects[%d] = %q, want %q", i, out.Subjects[i].Name, name)
		}
	}

	resp = doJSON(t, app, "GET", "/api/subjects/?sort=grades", nil)
	if resp.StatusCode != 400 {
		t.Fatalf("bad sort key status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteSubjectReturnsRemaining(t *testing.T) {
	app, repo := newTestApp(t)
	first, _ := repo.AddSubject("Math", "#1")
	second, _ := repo.AddSubject("Physics", "#2")

	resp := doJSON(t, app, "DELETE", "/api/subjects/"+first.ID, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	var out struct {
		Subjects []struct {
			ID string `json:"id"`
		} `json:"subjects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding delete response: %v", err)
	}
	if len(out.Subjects) != 1 || out.Subjects[0].ID != second.ID {
		t.Fatalf("unexpected remaining subjects: %+v", out.Subjects)
	}

	resp = doJSON(t, app, "DELETE", "/api/subjects/"+first.ID, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("double delete status = %d, want 404", resp.StatusCode)
	}
}

func TestTopicToggleEndpoint(t *testing.T) {
	app, repo := newTestApp(t)
	subject, _ := repo.AddSubject("Math", "#1")

	resp := doJSON(t, app, "POST", "/api/subjects/"+subject.ID+"/topics", fiber.Map{"name": "Algebra"})
	if resp.StatusCode != 201 {
		t.Fatalf("create topic status = %d", resp.StatusCode)
	}
	var created struct {
		Topic struct {
			ID string `json:"id"`
		} `json:"topic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decoding topic: %v", err)
	}

	resp = doJSON(t, app, "PUT", "/api/subjects/"+subject.ID+"/topics/"+created.Topic.ID+"/toggle", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("toggle status = %d", resp.StatusCode)
	}
	var toggled struct {
		Topic struct {
			Completed bool `json:"completed"`
		} `json:"topic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&toggled); err != nil {
		t.Fatalf("decoding toggle: %v", err)
	}
	if !toggled.Topic.Completed {
		t.Fatal("topic not completed after toggle")
	}
}

package classroom

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/school"
	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/storage/memory"
	"github.com/aanand-mishra/school-api/internal/types"
)

func newTestServer(t *testing.T) (*http.ServeMux, *memory.Memory) {
	t.Helper()
	store, err := memory.New(&config.Config{
		IDStrategy: config.IDStrategySequential,
		School:     config.School{ID: 1, Name: "MySchool"},
	})
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/classrooms", New(store))
	mux.HandleFunc("GET /api/classrooms", GetList(store))
	mux.HandleFunc("GET /api/classrooms/{roomName}", GetByName(store))
	mux.HandleFunc("PUT /api/classrooms/{id}", Update(store))
	mux.HandleFunc("DELETE /api/classrooms/{id}", Delete(store))
	mux.HandleFunc("GET /api/classroom/fit", Fit(store))
	return mux, store
}

func do(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestNew_ValidBody_CreatesClassroom(t *testing.T) {
	mux, _ := newTestServer(t)

	rec := do(t, mux, http.MethodPost, "/api/classrooms",
		`{"roomName":"101","size":48.5,"capacity":30,"hasFeatureFlag":true}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var got types.Classroom
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	want := types.Classroom{ID: 1, RoomName: "101", Size: 48.5, Capacity: 30, HasFeatureFlag: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestNew_InvalidBody_Returns400(t *testing.T) {
	tests := map[string]string{
		"missing room": `{"size":10,"capacity":3}`,
		"blank room":   `{"roomName":" ","size":10,"capacity":3}`,
		"zero size":    `{"roomName":"101","size":0,"capacity":3}`,
		"negative cap": `{"roomName":"101","size":10,"capacity":-1}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			mux, store := newTestServer(t)

			rec := do(t, mux, http.MethodPost, "/api/classrooms", body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body)
			}
			if len(store.GetClassrooms()) != 0 {
				t.Error("nothing must be stored")
			}
		})
	}
}

func TestGetByName_IgnoresCase(t *testing.T) {
	mux, _ := newTestServer(t)
	do(t, mux, http.MethodPost, "/api/classrooms", `{"roomName":"Lab","size":10,"capacity":3}`)

	if rec := do(t, mux, http.MethodGet, "/api/classrooms/lab", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := do(t, mux, http.MethodGet, "/api/classrooms/Gym", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	mux, store := newTestServer(t)
	do(t, mux, http.MethodPost, "/api/classrooms", `{"roomName":"Lab","size":10,"capacity":3}`)

	if rec := do(t, mux, http.MethodPut, "/api/classrooms/1", `{"roomName":"Lab","size":10,"capacity":0}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec := do(t, mux, http.MethodPut, "/api/classrooms/1", `{"roomName":"Lab B","size":12,"capacity":4,"hasFeatureFlag":true}`); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if c := store.GetClassrooms()[0]; c.RoomName() != "Lab B" || !c.HasFeatureFlag() {
		t.Errorf("unexpected classroom %+v", c)
	}
	if rec := do(t, mux, http.MethodPut, "/api/classrooms/5", `{"roomName":"X","size":1,"capacity":1}`); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	if rec := do(t, mux, http.MethodDelete, "/api/classrooms/5", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec := do(t, mux, http.MethodDelete, "/api/classrooms/1", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestFit(t *testing.T) {
	mux, store := newTestServer(t)
	do(t, mux, http.MethodPost, "/api/classrooms", `{"roomName":"101","size":10,"capacity":1}`)
	for _, name := range []string{"Ada", "Alan"} {
		in := storage.NewStudent{Name: name, Gender: school.GenderOther, ClassName: "Math"}
		if _, err := store.CreateStudent(in); err != nil {
			t.Fatal(err)
		}
	}

	rec := do(t, mux, http.MethodGet, "/api/classroom/fit?className=Math&roomName=101", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got types.FitResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if want := (types.FitResponse{ClassName: "Math", RoomName: "101", CanFit: false}); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if rec := do(t, mux, http.MethodGet, "/api/classroom/fit?className=Math", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing roomName, got %d", rec.Code)
	}
}

// Package student contains all HTTP handlers related to the Student resource.
//
// Each exported function is a factory: it receives the storage once at
// route registration and returns the http.HandlerFunc that serves every
// request, closing over that storage.
//
//	router.HandleFunc("POST /api/students", student.New(store))
package student

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/aanand-mishra/school-api/internal/roster"
	"github.com/aanand-mishra/school-api/internal/school"
	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/request"
	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// maxUploadSize caps the multipart body accepted by Import.
const maxUploadSize = 10 << 20

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
// Generates an id, builds the student and adds it to the school.
//
// Request body (JSON):
//
//	{ "name": "Ada", "gender": "Female", "dateOfBirth": "2011-03-04", "className": "5B" }
//
// Success response (200 OK): the created student, id included.
//
// Error responses:
//
//	400 Bad Request  — empty/malformed body, unknown gender, bad date,
//	                   or any field the domain rejects
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var req types.StudentRequest
		if !request.Decode(w, r, &req) {
			return
		}

		in, err := toNewStudent(req)
		if err != nil {
			response.Error(w, err)
			return
		}

		st, err := store.CreateStudent(in)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("student created", slog.Int("id", st.ID()))
		response.WriteJSON(w, http.StatusOK, types.FromStudent(st))
	}
}

// GetList handles GET /api/students
// Returns every student in insertion order, [] when there are none.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")
		response.WriteJSON(w, http.StatusOK, types.FromStudents(store.GetStudents()))
	}
}

// GetByName handles GET /api/students/name/{name}
// The name matches ignoring case; 404 when nobody has it.
func GetByName(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		slog.Info("getting a student by name", slog.String("name", name))

		st, ok := store.GetStudentByName(name)
		if !ok {
			response.NotFound(w, "student not found")
			return
		}
		response.WriteJSON(w, http.StatusOK, types.FromStudent(st))
	}
}

// GetByClass handles GET /api/students/class/{className}
// The class name matches ignoring case; the list may be empty.
func GetByClass(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		className := r.PathValue("className")
		slog.Info("getting students by class", slog.String("className", className))

		response.WriteJSON(w, http.StatusOK,
			types.FromStudents(store.GetStudentsByClass(className)))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/students/{id}
// Replaces the name and class of an existing student. Both values are
// applied or neither is.
//
// Request body (JSON):
//
//	{ "name": "Ada Lovelace", "className": "6B" }
//
// Error responses:
//
//	400 Bad Request  — invalid id or body
//	404 Not Found    — no student with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		intID, ok := parseID(w, id)
		if !ok {
			return
		}

		var req types.StudentUpdate
		if !request.Decode(w, r, &req) {
			return
		}

		st, found, err := store.UpdateStudentByID(intID, req.Name, req.ClassName)
		if !found {
			response.NotFound(w, "student not found")
			return
		}
		if err != nil {
			response.Error(w, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, types.FromStudent(st))
	}
}

// Delete handles DELETE /api/students/{id}
// 200 when the student was removed, 404 when the id is unknown.
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		intID, ok := parseID(w, id)
		if !ok {
			return
		}

		if !store.DeleteStudentByID(intID) {
			response.NotFound(w, "student not found")
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		response.Message(w, "student deleted")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Import handles POST /api/students/import
// Adds every valid row of an uploaded .xlsx roster (multipart field "file").
// Invalid rows are skipped and listed in the response with their row number.
//
// Success response (200 OK):
//
//	{ "imported": 2, "skipped": [{ "row": 4, "error": "invalid gender: ..." }], "students": [...] }
//
// Error responses:
//
//	400 Bad Request  — missing file or not a workbook
//
// ─────────────────────────────────────────────────────────────────────────────
func Import(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("error retrieving uploaded file: %w", err)))
			return
		}
		defer file.Close()

		slog.Info("importing students", slog.String("file", header.Filename))

		entries, err := roster.Read(file)
		if err != nil {
			slog.Error("error reading roster",
				slog.String("file", header.Filename),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		result := types.ImportResult{Skipped: make([]types.RowError, 0)}
		valid := make([]storage.NewStudent, 0, len(entries))
		rows := make([]int, 0, len(entries))
		for _, e := range entries {
			in, err := toNewStudent(e.Request)
			if err == nil {
				err = request.Validate(&e.Request)
			}
			if err != nil {
				result.Skipped = append(result.Skipped, types.RowError{Row: e.Row, Error: err.Error()})
				continue
			}
			valid = append(valid, in)
			rows = append(rows, e.Row)
		}

		created, errs := store.ImportStudents(valid)
		for i, err := range errs {
			if err != nil {
				result.Skipped = append(result.Skipped, types.RowError{Row: rows[i], Error: err.Error()})
			}
		}
		sort.Slice(result.Skipped, func(i, j int) bool {
			return result.Skipped[i].Row < result.Skipped[j].Row
		})
		result.Imported = len(created)
		result.Students = types.FromStudents(created)

		slog.Info("students imported",
			slog.String("file", header.Filename),
			slog.Int("imported", result.Imported),
			slog.Int("skipped", len(result.Skipped)))
		response.WriteJSON(w, http.StatusOK, result)
	}
}

// Export handles GET /api/students/export
// Streams every student as an .xlsx roster that Import accepts back.
func Export(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("exporting students")

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="students.xlsx"`)
		if err := roster.Write(w, types.FromStudents(store.GetStudents())); err != nil {
			slog.Error("error exporting students", slog.String("error", err.Error()))
		}
	}
}

// toNewStudent parses the string fields of a request into domain values.
func toNewStudent(req types.StudentRequest) (storage.NewStudent, error) {
	gender, err := school.ParseGender(req.Gender)
	if err != nil {
		return storage.NewStudent{}, err
	}
	dob, err := types.ParseDate(req.DateOfBirth)
	if err != nil {
		return storage.NewStudent{}, err
	}
	return storage.NewStudent{
		Name:        req.Name,
		Gender:      gender,
		DateOfBirth: dob,
		ClassName:   req.ClassName,
	}, nil
}

func parseID(w http.ResponseWriter, id string) (int, bool) {
	intID, err := strconv.Atoi(id)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return intID, true
}

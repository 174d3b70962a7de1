// Package classroom contains the HTTP handlers for the Classroom resource
// and the class-fits-room check.
package classroom

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/request"
	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/classrooms
//
// Request body (JSON):
//
//	{ "roomName": "101", "size": 48.5, "capacity": 30, "hasFeatureFlag": true }
//
// Success response (200 OK): the created classroom, id included.
// 400 Bad Request on an empty/malformed body or a non-positive size or capacity.
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a classroom")

		var req types.ClassroomRequest
		if !request.Decode(w, r, &req) {
			return
		}

		c, err := store.CreateClassroom(toNewClassroom(req))
		if err != nil {
			slog.Error("error creating classroom", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("classroom created", slog.Int("id", c.ID()))
		response.WriteJSON(w, http.StatusOK, types.FromClassroom(c))
	}
}

// GetList handles GET /api/classrooms
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all classrooms")
		response.WriteJSON(w, http.StatusOK, types.FromClassrooms(store.GetClassrooms()))
	}
}

// GetByName handles GET /api/classrooms/{roomName}
// The room name matches ignoring case; 404 when no room has it.
func GetByName(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomName := r.PathValue("roomName")
		slog.Info("getting a classroom by name", slog.String("roomName", roomName))

		c, ok := store.GetClassroomByName(roomName)
		if !ok {
			response.NotFound(w, "classroom not found")
			return
		}
		response.WriteJSON(w, http.StatusOK, types.FromClassroom(c))
	}
}

// Update handles PUT /api/classrooms/{id}
// Replaces every mutable field, all or nothing. 404 when the id is unknown.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a classroom", slog.String("id", id))

		intID, err := strconv.Atoi(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		var req types.ClassroomRequest
		if !request.Decode(w, r, &req) {
			return
		}

		c, found, err := store.UpdateClassroomByID(intID, toNewClassroom(req))
		if !found {
			response.NotFound(w, "classroom not found")
			return
		}
		if err != nil {
			response.Error(w, err)
			return
		}

		slog.Info("classroom updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, types.FromClassroom(c))
	}
}

// Delete handles DELETE /api/classrooms/{id}
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a classroom", slog.String("id", id))

		intID, err := strconv.Atoi(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		if !store.DeleteClassroomByID(intID) {
			response.NotFound(w, "classroom not found")
			return
		}

		slog.Info("classroom deleted", slog.String("id", id))
		response.Message(w, "classroom deleted")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Fit handles GET /api/classroom/fit?className=&roomName=
// Reports whether the room seats every student of the class. Both names
// must match exactly; an unknown room never fits.
//
// Success response (200 OK):
//
//	{ "className": "Math", "roomName": "101", "canFit": false }
//
// 400 Bad Request when either parameter is empty.
// ─────────────────────────────────────────────────────────────────────────────
func Fit(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		className := r.URL.Query().Get("className")
		roomName := r.URL.Query().Get("roomName")
		slog.Info("checking class fit",
			slog.String("className", className),
			slog.String("roomName", roomName))

		canFit, err := store.CanClassFitInRoom(className, roomName)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, types.FitResponse{
			ClassName: className,
			RoomName:  roomName,
			CanFit:    canFit,
		})
	}
}

func toNewClassroom(req types.ClassroomRequest) storage.NewClassroom {
	return storage.NewClassroom{
		RoomName:       req.RoomName,
		Size:           req.Size,
		Capacity:       req.Capacity,
		HasFeatureFlag: req.HasFeatureFlag,
	}
}

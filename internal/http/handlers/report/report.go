// Package report serves the school-wide reporting endpoints.
package report

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// Get handles GET /api/school/report
//
//	{
//	  "schoolId": 1, "schoolName": "MySchool",
//	  "totalStudents": 3, "totalClassrooms": 1,
//	  "studentsByGender": { "Male": 1, "Female": 2, "Other": 0 },
//	  "averageAge": 12.4, "totalDistinctClasses": 2,
//	  "classesWithStudentCount": { "A": 2, "B": 1 },
//	  "classroomsWithFeatureFlag": [ ... ]
//	}
func Get(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("building school report")
		response.WriteJSON(w, http.StatusOK, types.FromSummary(store.Summary(time.Now())))
	}
}

// FemalePercentage handles GET /api/school/classes/{className}/female-percentage
// The class name matches exactly; 0 for a class with no students.
func FemalePercentage(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		className := r.PathValue("className")
		slog.Info("computing female percentage", slog.String("className", className))

		pct, err := store.FemalePercentageInClass(className)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, types.FemalePercentage{
			ClassName:  className,
			Percentage: pct,
		})
	}
}

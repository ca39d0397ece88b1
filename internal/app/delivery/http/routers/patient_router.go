package routers

import (
	"cataractcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Get("/export", patientController.ExportRoster)

	router.Route("/{pid}", func(r chi.Router) {
		r.Get("/", patientController.FindByPID)
		r.Put("/", patientController.Intake)
		r.Patch("/", patientController.Edit)

		r.Get("/images", patientController.FindImages)
		r.Post("/images", patientController.UploadImage)

		r.Get("/report", patientController.DownloadReport)
		r.Post("/report", patientController.ArchiveReport)
	})
}

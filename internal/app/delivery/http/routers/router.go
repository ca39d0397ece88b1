package routers

import (
	"cataractcare-service/internal/app/config"
	"cataractcare-service/internal/app/delivery/http/controllers"
	"cataractcare-service/internal/app/delivery/http/middlewares"
	"cataractcare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const versionPrefix = "/v1"

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	patientController *controllers.PatientController,
	vocabularyController *controllers.VocabularyController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
			middlewares.HeaderAPIKey,
		},
		ExposedHeaders: []string{
			constvars.HeaderLink,
			constvars.HeaderXRequestID,
			constvars.HeaderContentDisposition,
		},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(mw.RateLimit())
	router.Use(mw.BodyLimit)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(mw.RequireAPIKey)

			r.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Get("/"+constvars.ResourceVocabularies, vocabularyController.FindAll)
		})
	})
}

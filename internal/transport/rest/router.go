package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"interviewlens/internal/service"
	"interviewlens/internal/transport/rest/handler"
	"interviewlens/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	InterviewService *service.InterviewService
	ReportService    *service.ReportService
	InsightService   *service.InsightService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	insightHandler := handler.NewInsightHandler(c.InsightService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/interviews", interviewHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/interviews", interviewHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/interviews/{interviewId}", interviewHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/interviews/{interviewId}", interviewHandler.Update).Methods("PATCH", "OPTIONS")
	userRoutes.HandleFunc("/interviews/{interviewId}", interviewHandler.Delete).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/interviews/{interviewId}/report", reportHandler.Save).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/interviews/{interviewId}/report", reportHandler.Get).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/interviews/{interviewId}/qa/{qaId}/insight", insightHandler.QAInsight).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

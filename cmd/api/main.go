package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amiracx/partner-portal-api/internal/infra/http/handlers"
	"github.com/amiracx/partner-portal-api/internal/infra/http/middleware"
	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
	"github.com/amiracx/partner-portal-api/internal/usecase"
)

func main() {
	godotenv.Load()

	apiToken := os.Getenv("SEATABLE_API_TOKEN")
	baseURL := os.Getenv("SEATABLE_URL")
	if baseURL == "" {
		baseURL = "https://cloud.seatable.io"
	}
	if apiToken == "" {
		log.Println("warning: SEATABLE_API_TOKEN not set, upstream calls will fail")
	}

	// 1. Integration client (the API token never leaves this process)
	table := seatable.NewClient(apiToken, baseURL)

	// 2. UseCases
	loginUC := usecase.NewLoginPartnerUseCase(table)
	listCompaniesUC := usecase.NewListCompaniesUseCase(table)
	listPartnerCompaniesUC := usecase.NewListPartnerCompaniesUseCase(table)
	findCompanyUC := usecase.NewFindCompanyUseCase(table)
	listLeadsUC := usecase.NewListLeadsUseCase(table)
	createLeadUC := usecase.NewCreateLeadUseCase(table)
	updateLeadUC := usecase.NewUpdateLeadUseCase(table)

	// 3. Handlers
	authHandler := handlers.NewAuthHandler(loginUC)
	companyHandler := handlers.NewCompanyHandler(listCompaniesUC, listPartnerCompaniesUC, findCompanyUC)
	leadHandler := handlers.NewLeadHandler(listLeadsUC, createLeadUC, updateLeadUC)
	healthHandler := handlers.NewHealthHandler()

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))

	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Get("/api/companies", companyHandler.HandleList)
	r.Get("/api/companies/lookup", companyHandler.HandleLookup)
	r.Get("/api/partners/{partnerID}/companies", companyHandler.HandleListByPartner)

	r.Get("/api/leads", leadHandler.HandleList)
	r.Post("/api/leads", leadHandler.HandleCreate)
	r.Put("/api/leads/{leadID}", leadHandler.HandleUpdate)

	r.Get("/", healthHandler.HandleIndex)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("partner portal API listening on :%s (base %s)", port, baseURL)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return strings.Split(raw, ",")
}

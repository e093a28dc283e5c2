package http

import (
	"net/http"

	"health-directory-api/internal/delivery/http/handler"
	"health-directory-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	clinicHandler       *handler.ClinicHandler
	professionalHandler *handler.ProfessionalHandler
	specialtyHandler    *handler.SpecialtyHandler
	healthPlanHandler   *handler.HealthPlanHandler
	newsHandler         *handler.NewsHandler
	partnerHandler      *handler.PartnerHandler
	uploadHandler       *handler.UploadHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	storageRoot         string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clinicHandler *handler.ClinicHandler,
	professionalHandler *handler.ProfessionalHandler,
	specialtyHandler *handler.SpecialtyHandler,
	healthPlanHandler *handler.HealthPlanHandler,
	newsHandler *handler.NewsHandler,
	partnerHandler *handler.PartnerHandler,
	uploadHandler *handler.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	storageRoot string,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		clinicHandler:       clinicHandler,
		professionalHandler: professionalHandler,
		specialtyHandler:    specialtyHandler,
		healthPlanHandler:   healthPlanHandler,
		newsHandler:         newsHandler,
		partnerHandler:      partnerHandler,
		uploadHandler:       uploadHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		storageRoot:         storageRoot,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public directory routes, active records only
	api.HandleFunc("/clinics", r.clinicHandler.GetActiveClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/featured", r.clinicHandler.GetFeaturedClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{slug}", r.clinicHandler.GetClinicBySlug).Methods(http.MethodGet)
	api.HandleFunc("/professionals", r.professionalHandler.GetActiveProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{slug}", r.professionalHandler.GetProfessionalBySlug).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}/professionals", r.professionalHandler.GetProfessionalsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/health-plans", r.healthPlanHandler.GetActiveHealthPlans).Methods(http.MethodGet)
	api.HandleFunc("/news", r.newsHandler.GetActiveNews).Methods(http.MethodGet)
	api.HandleFunc("/news/{slug}", r.newsHandler.GetNewsBySlug).Methods(http.MethodGet)
	api.HandleFunc("/partners", r.partnerHandler.GetActivePartners).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Contact details require a logged-in user
	contact := api.PathPrefix("/professionals").Subrouter()
	contact.Use(r.authMiddleware.Authenticate)
	contact.HandleFunc("/{id}/contact", r.professionalHandler.GetProfessionalContact).Methods(http.MethodGet)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	// Clinic management (admin)
	admin.HandleFunc("/clinics", r.clinicHandler.CreateClinic).Methods(http.MethodPost)
	admin.HandleFunc("/clinics", r.clinicHandler.GetAllClinics).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.GetClinic).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.UpdateClinic).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.DeleteClinic).Methods(http.MethodDelete)
	admin.HandleFunc("/clinics/{id}/professionals", r.clinicHandler.GetClinicProfessionals).Methods(http.MethodGet)

	// Professional management (admin)
	admin.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	admin.HandleFunc("/professionals", r.professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.DeleteProfessional).Methods(http.MethodDelete)
	admin.HandleFunc("/professionals/{id}/clinics", r.professionalHandler.GetProfessionalClinics).Methods(http.MethodGet)

	// Specialty management (admin)
	admin.HandleFunc("/specialties", r.specialtyHandler.CreateSpecialty).Methods(http.MethodPost)
	admin.HandleFunc("/specialties", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.UpdateSpecialty).Methods(http.MethodPut)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.DeleteSpecialty).Methods(http.MethodDelete)

	// Health plan management (admin)
	admin.HandleFunc("/health-plans", r.healthPlanHandler.CreateHealthPlan).Methods(http.MethodPost)
	admin.HandleFunc("/health-plans", r.healthPlanHandler.GetAllHealthPlans).Methods(http.MethodGet)
	admin.HandleFunc("/health-plans/{id}", r.healthPlanHandler.GetHealthPlan).Methods(http.MethodGet)
	admin.HandleFunc("/health-plans/{id}", r.healthPlanHandler.UpdateHealthPlan).Methods(http.MethodPut)
	admin.HandleFunc("/health-plans/{id}", r.healthPlanHandler.DeleteHealthPlan).Methods(http.MethodDelete)

	// News management (admin)
	admin.HandleFunc("/news", r.newsHandler.CreateNews).Methods(http.MethodPost)
	admin.HandleFunc("/news", r.newsHandler.GetAllNews).Methods(http.MethodGet)
	admin.HandleFunc("/news/{id}", r.newsHandler.GetNews).Methods(http.MethodGet)
	admin.HandleFunc("/news/{id}", r.newsHandler.UpdateNews).Methods(http.MethodPut)
	admin.HandleFunc("/news/{id}", r.newsHandler.DeleteNews).Methods(http.MethodDelete)

	// Partner management (admin)
	admin.HandleFunc("/partners", r.partnerHandler.CreatePartner).Methods(http.MethodPost)
	admin.HandleFunc("/partners", r.partnerHandler.GetAllPartners).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.GetPartner).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.UpdatePartner).Methods(http.MethodPut)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.DeletePartner).Methods(http.MethodDelete)

	// Upload management (admin)
	admin.HandleFunc("/uploads", r.uploadHandler.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/uploads", r.uploadHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/storage/buckets", r.uploadHandler.ListBuckets).Methods(http.MethodGet)
	admin.HandleFunc("/storage/buckets/{bucket}", r.uploadHandler.ListObjects).Methods(http.MethodGet)

	// Uploaded images are served directly off disk
	r.router.PathPrefix("/storage/").Handler(
		http.StripPrefix("/storage/", http.FileServer(http.Dir(r.storageRoot))),
	).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

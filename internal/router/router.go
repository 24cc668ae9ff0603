package router

import (
	"context"
	"fmt"
	"net/http"

	_ "vet-clinic/docs"
	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/domain/invoices"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB pg.DB

	// nil => registry propio (evita colisiones entre routers en tests).
	Registry *prometheus.Registry

	AllowedOrigins []string

	// Carga el catálogo por defecto si la tabla services está vacía.
	SeedDefaultServices bool
}

type repos struct {
	owners       owners.Repository
	pets         pets.Repository
	services     catalog.Repository
	appointments appointments.Repository
	invoices     invoices.Repository
}

func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	var rp repos
	if opts.DB != nil {
		rp = repos{
			owners:       pg.NewOwnersRepo(opts.DB),
			pets:         pg.NewPetsRepo(opts.DB),
			services:     pg.NewServicesRepo(opts.DB),
			appointments: pg.NewAppointmentsRepo(opts.DB),
			invoices:     pg.NewInvoicesRepo(opts.DB),
		}
	} else {
		db := mem.NewDB()
		rp = repos{
			owners:       mem.NewOwnersRepo(db),
			pets:         mem.NewPetsRepo(db),
			services:     mem.NewServicesRepo(db),
			appointments: mem.NewAppointmentsRepo(db),
			invoices:     mem.NewInvoicesRepo(db),
		}
	}

	// Services por módulo
	ownersSvc := owners.NewService(rp.owners)
	petsSvc := pets.NewService(rp.pets, ownersSvc)
	cat := catalog.NewCatalog(rp.services)
	apptsSvc := appointments.NewService(rp.appointments, petsSvc, cat)
	invoicesSvc := invoices.NewService(rp.invoices, apptsSvc)

	if opts.SeedDefaultServices {
		n, err := cat.EnsureDefaults(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed services: %w", err)
		}
		if n > 0 {
			log.Info("default services seeded", map[string]any{"count": n})
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Stack(log, middleware.NewMetrics(reg))...)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", healthHandler)
	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc)
		catalog.RegisterRoutes(api, cat)
		appointments.RegisterRoutes(api, apptsSvc)
		invoices.RegisterRoutes(api, invoicesSvc)
	})

	return r, nil
}

// healthHandler godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

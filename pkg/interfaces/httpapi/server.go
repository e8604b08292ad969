// Package httpapi exposes the engines over HTTP for the dashboard.
// The engines stay pure; this layer owns snapshot loading, caching
// and JSON encoding.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vailmont/printops/pkg/application/services/forecast"
	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/application/services/validation"
	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
)

// Revisioner reports an identity token for the current data, used to
// cache validation reports across requests. Stores that cannot report
// a revision may be used without one; every request then recomputes.
type Revisioner interface {
	Revision(ctx context.Context) (string, error)
}

// Server wires the engines to the repositories
type Server struct {
	orders  repositories.OrderRepository
	catalog repositories.CatalogRepository
	stock   repositories.StockRepository
	usage   repositories.UsageRepository

	validator *validation.Validator
	forecast  *forecast.Engine
	window    time.Duration
	costing   materials.CostingOptions

	revisioner Revisioner
	cache      *reportCache
	log        *zap.Logger
}

// Options configures a Server
type Options struct {
	Orders     repositories.OrderRepository
	Catalog    repositories.CatalogRepository
	Stock      repositories.StockRepository
	Usage      repositories.UsageRepository
	Revisioner Revisioner
	Costing    materials.CostingOptions
	Window     time.Duration
	Logger     *zap.Logger
}

// NewServer creates a Server from the given collaborators
func NewServer(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	window := opts.Window
	if window <= 0 {
		window = forecast.DefaultWindow
	}
	return &Server{
		orders:     opts.Orders,
		catalog:    opts.Catalog,
		stock:      opts.Stock,
		usage:      opts.Usage,
		validator:  validation.NewValidator(validation.DefaultConfig()),
		forecast:   forecast.NewEngine(window),
		window:     window,
		costing:    opts.Costing,
		revisioner: opts.Revisioner,
		cache:      &reportCache{},
		log:        log,
	}
}

// Routes returns the HTTP router
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/validation", s.handleValidation)
		r.Get("/low-stock", s.handleLowStock)
		r.Get("/orders/{id}/availability", s.handleAvailability)
		r.Get("/products/{name}/bom", s.handleBOM)
	})

	return r
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	revision := ""
	if s.revisioner != nil {
		rev, err := s.revisioner.Revision(ctx)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		revision = rev
		if report, ok := s.cache.get(revision); ok {
			s.writeJSON(w, http.StatusOK, report)
			return
		}
	}

	active, err := s.orders.ActiveOrders(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	archived, err := s.orders.ArchivedOrders(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	catalog, err := s.catalog.Products(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	report := s.validator.Validate(ctx, active, archived, catalog)
	if revision != "" {
		s.cache.put(revision, report)
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()

	filaments, err := s.stock.FilamentsByOwner(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	parts, err := s.stock.PartsByOwner(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	productStock, err := s.stock.ProductStock(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	usage, err := s.usage.UsageSince(ctx, now.Add(-s.window))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	items := s.forecast.LowStock(filaments, parts, productStock, usage, now)
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := entities.OrderID(chi.URLParam(r, "id"))

	active, err := s.orders.ActiveOrders(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	var order *entities.Order
	for i := range active {
		if active[i].ID == orderID {
			order = &active[i]
			break
		}
	}
	if order == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	product, err := s.catalog.FindProduct(ctx, order.BaseItemName())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	filaments, err := s.stock.FilamentsByOwner(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := materials.CheckAvailability(*order, product, filaments)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBOM(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	product, err := s.catalog.FindProduct(ctx, name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if product == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	opts := s.costing
	opts.PrinterID = r.URL.Query().Get("printer")

	breakdown := materials.ComputeBOM(*product, opts)
	s.writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Error("request failed", zap.Error(err))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// logRequests is a minimal request-logging middleware
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bengkelpos/backend/api/controllers"
	"github.com/bengkelpos/backend/api/middleware"
	"github.com/bengkelpos/backend/internal/activity"
	"github.com/bengkelpos/backend/internal/auth"
	"github.com/bengkelpos/backend/internal/catalog"
	"github.com/bengkelpos/backend/internal/dashboard"
	"github.com/bengkelpos/backend/internal/products"
	"github.com/bengkelpos/backend/internal/sales"
	"github.com/bengkelpos/backend/internal/sessions"
	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/logger"
	"github.com/bengkelpos/backend/pkg/metrics"
	"github.com/bengkelpos/backend/pkg/redis"
	"github.com/bengkelpos/backend/pkg/storage"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	Metrics   *metrics.HTTPMetrics
	Redis     *redis.Client
	Storage   storage.Uploader
	Health    map[string]controllers.Pinger
	Sessions  sessions.Service
	Auth      auth.Service
	Activity  activity.Logger
	Catalog   catalog.Service
	Products  products.Service
	Sales     sales.Service
	Dashboard dashboard.Service
}

// New assembles the router: public health and auth endpoints, then every
// business route behind the session gate.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(d.Logger))
	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Logging(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	r.Get("/health/live", controllers.HealthLive(d.Config.App.Env))
	r.Get("/health/ready", controllers.HealthReady(d.Logger, d.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			loginPolicy := middleware.NewAuthRateLimitPolicy(
				"login",
				d.Config.AuthRateLimit.LoginWindow,
				d.Config.AuthRateLimit.LoginIPLimit,
				d.Config.AuthRateLimit.LoginUsernameLimit,
			)
			loginLimiter := middleware.AuthRateLimit(loginPolicy, nil, d.Logger)
			if d.Redis != nil {
				loginLimiter = middleware.AuthRateLimit(loginPolicy, d.Redis, d.Logger)
			}
			r.With(loginLimiter).Post("/login", controllers.AuthLogin(d.Auth, d.Logger))

			// Logout resolves its own token so stale sessions can still
			// be cleaned up.
			r.Post("/logout", controllers.AuthLogout(d.Auth, d.Logger))

			r.With(middleware.Auth(d.Sessions, d.Logger)).
				Get("/validate", controllers.AuthValidate(d.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Sessions, d.Logger))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ProductsList(d.Products, d.Logger))
				r.Post("/", controllers.ProductsCreate(d.Products, d.Logger))
				r.Post("/stock", controllers.ProductsAddStock(d.Products, d.Logger))
				r.Get("/{id}", controllers.ProductsGet(d.Products, d.Logger))
				r.Put("/{id}", controllers.ProductsUpdate(d.Products, d.Logger))
				r.Delete("/{id}", controllers.ProductsDelete(d.Products, d.Logger))
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", controllers.SalesList(d.Sales, d.Logger))
				r.Post("/", controllers.SalesCreate(d.Sales, d.Logger))
				r.Get("/today", controllers.SalesToday(d.Sales, d.Logger))
				r.Get("/{id}/items", controllers.SalesItems(d.Sales, d.Logger))
			})

			r.Get("/categories", controllers.CategoriesList(d.Catalog, d.Logger))
			r.Get("/vehicle-types", controllers.VehicleTypesList(d.Catalog, d.Logger))

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/low-stock", controllers.DashboardLowStock(d.Dashboard, d.Logger))
				r.Get("/monthly", controllers.DashboardMonthlyRevenue(d.Dashboard, d.Logger))
				r.Get("/weekly", controllers.DashboardWeeklyRevenue(d.Dashboard, d.Logger))
			})

			r.Post("/upload/product-image", controllers.UploadProductImage(d.Storage, d.Config.Storage, d.Logger))
			r.Post("/upload/receipt", controllers.UploadReceipt(d.Storage, d.Config.Storage, d.Logger))
			r.Get("/storage/url", controllers.StorageURL(d.Storage, d.Config.Storage, d.Logger))
			r.Delete("/storage/{fileName}", controllers.StorageDelete(d.Storage, d.Config.Storage, d.Activity, d.Logger))

			r.Get("/config", controllers.ClientConfig(d.Config.Storage))
		})
	})

	return r
}

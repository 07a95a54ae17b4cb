package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/api/http/handler"
	"github.com/shifaalhind/backend/internal/api/http/middleware"
	"github.com/shifaalhind/backend/internal/service/auth"
	"github.com/shifaalhind/backend/internal/service/booking"
	"github.com/shifaalhind/backend/internal/service/doctor"
	"github.com/shifaalhind/backend/internal/service/hospital"
	"github.com/shifaalhind/backend/internal/service/media"
	"github.com/shifaalhind/backend/internal/service/packages"
	"github.com/shifaalhind/backend/internal/service/page"
	"github.com/shifaalhind/backend/internal/service/translator"
	"github.com/shifaalhind/backend/internal/service/treatment"
	"github.com/shifaalhind/backend/internal/service/user"
	"github.com/shifaalhind/backend/pkg/authorize"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
	"github.com/shifaalhind/backend/pkg/seo"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	Auth          authorize.IAuthorization
	AuthSvc       auth.Service
	UserSvc       user.Service
	HospitalSvc   hospital.Service
	DoctorSvc     doctor.Service
	TreatmentSvc  treatment.Service
	PackageSvc    packages.Service
	BookingSvc    booking.Service
	TranslatorSvc translator.Service
	PageSvc       page.Service
	MediaSvc      media.Service
	PasetoMgr     *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Handlers
	site := seo.Site{
		BaseURL:      r.p.Cfg.Site.BaseURL,
		NameEn:       r.p.Cfg.Site.NameEn,
		NameAr:       r.p.Cfg.Site.NameAr,
		ContactEmail: r.p.Cfg.Site.ContactEmail,
		ContactPhone: r.p.Cfg.Site.ContactPhone,
	}

	degraded := r.p.Cfg.Server.AllowDegradedReads

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	hospitalH := handler.NewHospitalHandler(r.p.HospitalSvc, site, degraded)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc, site, degraded)
	treatmentH := handler.NewTreatmentHandler(r.p.TreatmentSvc, site, degraded)
	packageH := handler.NewPackageHandler(r.p.PackageSvc, site, degraded)
	bookingH := handler.NewBookingHandler(r.p.BookingSvc)
	translatorH := handler.NewTranslatorHandler(r.p.TranslatorSvc)
	pageH := handler.NewPageHandler(r.p.PageSvc, degraded)
	mediaH := handler.NewMediaHandler(r.p.MediaSvc)

	// Every public route resolves the response language first.
	api := app.Group("/api/v1", middleware.ResolveLocale())

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerCatalogRoutes(api, hospitalH, doctorH, treatmentH, packageH, authRequired, requirePerm)
	r.registerBookingRoutes(api, bookingH, authRequired, requirePerm)
	r.registerContentRoutes(api, pageH, mediaH, authRequired, requirePerm)
	r.registerAdminRoutes(api, userH, translatorH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/repo"
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
	"github.com/shifaalhind/backend/pkg/email"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
	s3pkg "github.com/shifaalhind/backend/pkg/s3"
	"github.com/shifaalhind/backend/pkg/util/password"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideHospitalService,
		ProvideDoctorService,
		ProvideTreatmentService,
		ProvidePackageService,
		ProvideBookingService,
		ProvideTranslatorService,
		ProvidePageService,
		ProvideMediaService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
	logger *slog.Logger,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg, logger)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization, cfg *config.Config, logger *slog.Logger) user.Service {
	return user.New(db, authz, password.FromCentralConfig(cfg.Password), logger)
}

func ProvideHospitalService(db *repo.Client) hospital.Service {
	return hospital.New(db)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvideTreatmentService(db *repo.Client) treatment.Service {
	return treatment.New(db)
}

func ProvidePackageService(db *repo.Client) packages.Service {
	return packages.New(db)
}

func ProvideBookingService(db *repo.Client, mailer *email.Client, cfg *config.Config, logger *slog.Logger) booking.Service {
	return booking.New(db, mailer, cfg.Site, logger)
}

func ProvideTranslatorService(db *repo.Client) translator.Service {
	return translator.New(db)
}

func ProvidePageService(db *repo.Client) page.Service {
	return page.New(db)
}

func ProvideMediaService(db *repo.Client, store *s3pkg.Client, logger *slog.Logger) media.Service {
	return media.New(db, store, logger)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

package components

import (
	"pharmalink/internal/infra/db"
	"pharmalink/internal/infra/readstore"
	"pharmalink/internal/infra/repository"
	"pharmalink/internal/infra/uow"
	"pharmalink/internal/notify"
	"pharmalink/internal/usecase/commands"
	"pharmalink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPgxTxRunner,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewMatchRepository,
			fx.As(new(commands.MatchReader)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(commands.CatalogReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.PharmacyDirectory)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(notify.JobStore)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

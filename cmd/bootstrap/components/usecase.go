package components

import (
	"pharmalink/internal/pkg/clock"
	"pharmalink/internal/usecase/commands"
	"pharmalink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuthQueries,
		queries.NewRequestQueries,
		queries.NewMatchQueries,
		queries.NewOrderQueries,
		queries.NewNotificationQueries,
	),
)

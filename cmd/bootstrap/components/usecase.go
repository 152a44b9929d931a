package components

import (
	"roomboard/internal/domain/schedule"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/pkg/config"
	"roomboard/internal/usecase/commands"
	"roomboard/internal/usecase/queries"
	"roomboard/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewTxRunner,
	func(cfg config.ScheduleConfig) schedule.LoadThresholds {
		return cfg.Thresholds()
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewBookingCommands,
	),
)

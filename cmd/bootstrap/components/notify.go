package components

import (
	"context"
	"log/slog"

	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/config"
	"pharmalink/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewLogSender,
			fx.As(new(notify.Sender)),
		),
		NewNotifyWorker,
	),
	fx.Invoke(registerNotifyWorker),
)

func NewNotifyWorker(store notify.JobStore, sender notify.Sender, tx shared.TxRunner, cfg config.Config, logger *slog.Logger) *notify.Worker {
	return notify.NewWorker(store, sender, tx, cfg.Notify, logger)
}

func registerNotifyWorker(lc fx.Lifecycle, worker *notify.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			worker.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			worker.Stop()
			return nil
		},
	})
}

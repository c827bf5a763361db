package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"

	"github.com/fsdevblog/groph-auction/internal/events"
	"github.com/fsdevblog/groph-auction/internal/sweeper"
	"github.com/fsdevblog/groph-auction/internal/transport/gateway"

	"github.com/fsdevblog/groph-auction/pkg/uow"

	"github.com/fsdevblog/groph-auction/internal/config"
	"github.com/fsdevblog/groph-auction/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-auction/internal/service"
	"github.com/fsdevblog/groph-auction/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	closerSweepLimit      = 100
	cancelRetrySweepLimit = 50
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	dispatcher := events.NewDispatcher(events.NewLogSink(a.Logger), a.Logger)
	go dispatcher.Run(notifyCtx)

	gatewayClient := gateway.New(a.Config.GatewayBaseURL, a.Config.GatewaySecretKey)

	services, sErr := service.Factory(unitOfWork, gatewayClient, dispatcher, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		BidService:     services.BidService,
		RoomService:    services.RoomService,
		PaymentService: services.PaymentService,
		WalletService:  services.WalletService,
		ItemReader:     services.BidService,
		BidReader:      services.BidService,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	a.runSweepers(notifyCtx, services)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// runSweepers запускает фоновые циклы: старт комнат по расписанию,
// закрытие истекших лотов и повторы отмен платежей.
func (a *App) runSweepers(ctx context.Context, services *service.AppServices) {
	roomSweeper := sweeper.New(
		"room-starter",
		func(jobCtx context.Context) (int, error) {
			return services.RoomService.StartDueRooms(jobCtx)
		},
		a.Config.RoomSweepInterval(),
		a.Config.SweepInitialDelay(),
		a.Logger,
	)

	closerSweeper := sweeper.New(
		"auction-closer",
		func(jobCtx context.Context) (int, error) {
			return services.CloserService.CloseExpired(jobCtx, closerSweepLimit)
		},
		a.Config.CloserSweepInterval(),
		a.Config.SweepInitialDelay(),
		a.Logger,
	)

	cancelSweeper := sweeper.New(
		"payment-cancel-retry",
		func(jobCtx context.Context) (int, error) {
			return services.PaymentService.ProcessCancelRetries(jobCtx, cancelRetrySweepLimit)
		},
		a.Config.CancelRetryInterval(),
		a.Config.SweepInitialDelay(),
		a.Logger,
	)

	go roomSweeper.Run(ctx)
	go closerSweeper.Run(ctx)
	go cancelSweeper.Run(ctx)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.WalletRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWalletRepository(dbtx) },
		repoargs.ItemRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewItemRepository(dbtx) },
		repoargs.BidRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewBidRepository(dbtx) },
		repoargs.RoomRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewRoomRepository(dbtx) },
		repoargs.DealRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewDealRepository(dbtx) },
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPaymentRepository(dbtx) },
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

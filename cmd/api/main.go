package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/infrastructure/database/postgres"
	"github.com/estacionsb/cuadres-api/infrastructure/repository"
	"github.com/estacionsb/cuadres-api/internal/api"
	"github.com/estacionsb/cuadres-api/internal/config"
	"github.com/estacionsb/cuadres-api/internal/scheduler"
	"github.com/estacionsb/cuadres-api/internal/usecases/authenticating"
	"github.com/estacionsb/cuadres-api/internal/usecases/cuadre"
	"github.com/estacionsb/cuadres-api/internal/usecases/deposito"
	"github.com/estacionsb/cuadres-api/internal/usecases/fusion"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, se usa 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	transactionRepo := repository.NewFusionTransactionRepository(pgConn)
	cuadreEstacionRepo := repository.NewCuadreEstacionRepository(pgConn)
	cuadreTiendaRepo := repository.NewCuadreTiendaRepository(pgConn)
	depositoRepo := repository.NewDepositoRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	fusionService := fusion.NewService(transactionRepo, cfg)
	cuadreService := cuadre.NewService(cuadreEstacionRepo, cuadreTiendaRepo, transactionRepo)
	depositoService := deposito.NewService(depositoRepo)

	retentionService := scheduler.NewRetentionService(transactionRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de purga de transacciones")
	} else {
		logrus.Info("Agendador de purga de transacciones iniciado")
	}

	server, err := api.New(
		cfg,
		fusionService,
		cuadreService,
		depositoService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida")
	return conn
}

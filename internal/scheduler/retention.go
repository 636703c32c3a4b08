package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/infrastructure/repository"
	"github.com/estacionsb/cuadres-api/internal/config"
)

// RetentionConfig es la configuración de la purga de transacciones antiguas
type RetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// RetentionService agenda la purga periódica de transacciones Fusion que ya
// superaron la ventana de retención. Los cuadres y depósitos no se purgan:
// son el registro contable y se quedan.
type RetentionService struct {
	scheduler       *gocron.Scheduler
	config          RetentionConfig
	transactionRepo repository.FusionTransactionRepository
	purgeRunning    bool
	purgeMutex      sync.Mutex
	lastPurgeAt     time.Time
}

func NewRetentionService(
	transactionRepo repository.FusionTransactionRepository,
	appConfig *config.Config,
) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		Days:         appConfig.Retention.Days,
		Enabled:      appConfig.Retention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"days":          retentionConfig.Days,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuración de retención de transacciones cargada")

	return &RetentionService{
		scheduler:       scheduler,
		config:          retentionConfig,
		transactionRepo: transactionRepo,
		purgeRunning:    false,
	}
}

// Start inicia el agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Purga de transacciones deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de purga de transacciones")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeOldTransactions(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la purga de transacciones: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de purga de transacciones")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara la purga fuera de horario. Pensado para operación manual.
func (s *RetentionService) RunNow(ctx context.Context) {
	s.purgeOldTransactions(ctx)
}

func (s *RetentionService) purgeOldTransactions(ctx context.Context) {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Purga de transacciones ya en curso, se ignora")
		return
	}
	s.purgeRunning = true
	s.purgeMutex.Unlock()

	defer func() {
		s.purgeMutex.Lock()
		s.purgeRunning = false
		s.lastPurgeAt = time.Now()
		s.purgeMutex.Unlock()
	}()

	inicio := time.Now()

	eliminadas, err := s.transactionRepo.DeleteOlderThan(ctx, s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("Error al purgar transacciones antiguas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"eliminadas": eliminadas,
		"dias":       s.config.Days,
		"duracion":   time.Since(inicio).String(),
	}).Info("Purga de transacciones completada")
}

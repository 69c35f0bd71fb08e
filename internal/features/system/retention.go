package system

import (
	"context"
	"time"

	"cardvault/internal/config"
	"cardvault/internal/database"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// LogPruner deletes log entries created before a cutoff.
type LogPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type MongoLogPruner struct {
	DB *database.MongodbDB
}

func NewLogPruner(mongodb *database.MongodbDB) LogPruner {
	return &MongoLogPruner{DB: mongodb}
}

func (p *MongoLogPruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := p.DB.DB.Collection("logs").DeleteMany(ctx, bson.M{
		"created_on_utc": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// RetentionService prunes the logs collection nightly, keeping the window
// configured by LOG_RETENTION_DAYS.
type RetentionService struct {
	Pruner        LogPruner
	RetentionDays int
	Logger        *zap.Logger
	cron          *cron.Cron
}

func NewRetentionService(lc fx.Lifecycle, pruner LogPruner, cfg *config.Config, logger *zap.Logger) *RetentionService {
	s := &RetentionService{
		Pruner:        pruner,
		RetentionDays: cfg.LogRetentionDays,
		Logger:        logger,
		cron:          cron.New(),
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if _, err := s.cron.AddFunc("0 3 * * *", s.Prune); err != nil {
				return err
			}
			s.cron.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := s.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return s
}

// Cutoff is now minus the retention window.
func (s *RetentionService) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -s.RetentionDays)
}

func (s *RetentionService) Prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := s.Cutoff(time.Now().UTC())
	deleted, err := s.Pruner.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.Logger.Error("log retention prune failed", zap.Error(err))
		return
	}
	s.Logger.Info("log retention prune completed",
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", deleted))
}

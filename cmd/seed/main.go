package main

import (
	"context"
	"time"

	"cardvault/internal/config"
	"cardvault/internal/database"
	"cardvault/internal/features/reference"
	"cardvault/internal/features/user"
	"cardvault/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// starterVocabulary is the baseline set of reference entries a fresh install
// gets so the import wizard has something to match against.
var starterVocabulary = map[reference.Type][]string{
	reference.TypeBrand:          {"Topps", "Panini", "Upper Deck", "Bowman", "Fleer"},
	reference.TypeSeries:         {"Prizm", "Chrome", "Select", "Optic", "Mosaic"},
	reference.TypeInsert:         {"Refractor", "Silver", "Holo"},
	reference.TypeParallel:       {"Base", "Gold", "Black", "Red"},
	reference.TypeTeam:           {"Chicago Bulls", "Los Angeles Lakers", "Boston Celtics"},
	reference.TypeAutographType:  {"On-card", "Sticker", "Cut signature"},
	reference.TypeCategory:       {"Basketball", "Baseball", "Football", "Hockey", "Soccer"},
	reference.TypeGradingCompany: {"PSA", "BGS", "SGC", "CGC"},
}

// Seed creates the default admin user and starter vocabularies. Both are
// idempotent: existing usernames and names are left untouched.
func Seed(
	lc fx.Lifecycle,
	userRepo user.UserRepository,
	refRepo reference.ReferenceRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Seeding database")

				if err := refRepo.EnsureIndexes(ctx); err != nil {
					logger.Error("Failed to ensure indexes", zap.Error(err))
					return
				}

				seedAdmin(ctx, userRepo, logger)
				seedVocabularies(ctx, refRepo, logger)

				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func seedAdmin(ctx context.Context, userRepo user.UserRepository, logger *zap.Logger) {
	const adminUsername = "admin"

	if _, err := userRepo.FindByUsername(ctx, adminUsername); err == nil {
		logger.Info("Admin user exists, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash admin password", zap.Error(err))
		return
	}

	now := time.Now()
	admin := &user.User{
		Username:  adminUsername,
		Email:     "admin@localhost",
		Password:  string(hash),
		Role:      user.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Error("Failed to create admin user", zap.Error(err))
		return
	}
	logger.Info("Created admin user with default password, change it on first login")
}

func seedVocabularies(ctx context.Context, refRepo reference.ReferenceRepository, logger *zap.Logger) {
	for _, t := range reference.AllTypes {
		for _, name := range starterVocabulary[t] {
			if _, err := refRepo.FindByName(ctx, t, name); err == nil {
				continue
			}

			now := time.Now()
			entry := &reference.Entry{Name: name, CreatedAt: now, UpdatedAt: now}
			if err := refRepo.Create(ctx, t, entry); err != nil {
				logger.Error("Failed to seed entry",
					zap.String("type", string(t)),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			logger.Info("Seeded entry",
				zap.String("type", string(t)),
				zap.String("name", name))
		}
	}
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			user.NewUserRepository,
			reference.NewReferenceRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}

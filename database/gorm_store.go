package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rpupo63/nexusconsult-backend/errs"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// GormStore reads and writes collections over a direct Postgres connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// GetDB returns the underlying database connection for migrations and tooling.
func (s *GormStore) GetDB() *gorm.DB {
	return s.db
}

func (s *GormStore) Mode() string { return ModePostgres }

func (s *GormStore) Select(ctx context.Context, collection string, q Query, dest any) error {
	tx := s.db.WithContext(ctx).Table(collection)
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value})
	}
	for _, o := range q.Order {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Descending})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return errs.NewRemoteError(collection, "select", err)
	}
	return nil
}

func (s *GormStore) Insert(ctx context.Context, collection string, record any) error {
	if err := s.db.WithContext(ctx).Table(collection).Create(record).Error; err != nil {
		return errs.NewRemoteError(collection, "insert", err)
	}
	return nil
}

// NewGormLogger bridges GORM's logger to stdout the same way for every command.
func NewGormLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// OpenPostgres connects to the Supabase Postgres database described by cfg and
// registers the read replica when one is configured.
func OpenPostgres(cfg config.Config, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("connect", "database", err)
	}

	if replica := cfg.ReplicaDSN(); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  replica,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, errs.NewDatabaseError("register replica for", "database", err)
		}
		zlog.Info().Str("host", cfg.DB.ReplicaHost).Msg("Read replica registered")
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewDatabaseError("ping", "database", err)
	}
	return db, nil
}

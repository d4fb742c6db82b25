package migrator

import (
	ports "change-request-service/internal/domain/ports/output"
	"change-request-service/migrations"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

type Migrator struct {
	m   *migrate.Migrate
	log ports.Logger
}

// NewMigrator reads migrations from path, or from the embedded set when path is empty.
func NewMigrator(path string, dsn string, log ports.Logger) (*Migrator, error) {
	var (
		m   *migrate.Migrate
		err error
	)
	if path == "" {
		src, srcErr := iofs.New(migrations.FS, ".")
		if srcErr != nil {
			return nil, fmt.Errorf("open embedded migrations: %w", srcErr)
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, dsn)
	} else {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return nil, fmt.Errorf("resolve migrations path: %w", absErr)
		}
		m, err = migrate.New("file://"+filepath.ToSlash(abs), dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("migrations up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, dirty, _ := mg.m.Version()
	mg.log.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

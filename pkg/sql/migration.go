package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/mastermind/pkg/log"
)

const (
	migrationLock      = "perform_migration_lock"
	migrationTableName = "migration"
	querySeparator     = ";"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

type (
	Migration struct {
		ID  string
		SQL string
	}

	MigrationSource func() ([]Migration, error)

	Migrator struct {
		db     Database
		logger log.Logger
	}
)

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// FSMigrations reads *.sql files from the root of the fs, the file name is the migration ID
func FSMigrations(migrations fs.ReadDirFS) MigrationSource {
	return func() ([]Migration, error) {
		entries, err := migrations.ReadDir(".")
		if err != nil {
			return nil, fmt.Errorf("read migrations dir: %w", err)
		}

		result := make([]Migration, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
				continue
			}

			content, err := fs.ReadFile(migrations, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
			}

			result = append(result, Migration{
				ID:  entry.Name(),
				SQL: string(content),
			})
		}

		sort.Slice(result, func(i, j int) bool {
			return result[i].ID < result[j].ID
		})
		return result, nil
	}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) (err error) {
	ctx, release, err := withSessionLevelLock(ctx, migrationLock, m.db)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		releaseErr := release()
		if releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	_, err = m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	performed, err := m.performedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, source := range sources {
		migrations, err := source()
		if err != nil {
			return fmt.Errorf("get migrations: %w", err)
		}

		for _, migration := range migrations {
			if _, ok := performed[migration.ID]; ok {
				continue
			}

			err = m.perform(ctx, migration)
			if err != nil {
				return err
			}
			performed[migration.ID] = struct{}{}
		}
	}

	return nil
}

func (m *Migrator) perform(ctx context.Context, migration Migration) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = m.process(ctx, tx, migration)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migration.ID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) process(ctx context.Context, client Client, migration Migration) error {
	queries := splitToQueries(migration.SQL)
	if len(queries) == 0 {
		return errors.New("empty migration")
	}

	query, args, err := sq.Insert(migrationTableName).Columns("id").Values(migration.ID).ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	for _, query := range queries {
		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) performedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	query, args, err := sq.Select("id").From(migrationTableName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var ids []string
	err = m.db.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}

	return result, nil
}

func splitToQueries(sql string) []string {
	parts := strings.Split(sql, querySeparator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}

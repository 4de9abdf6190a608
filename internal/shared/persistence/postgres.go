package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the postgres port needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Table describes how one entity type maps onto a postgres table.
// The id column is always "id" and is assigned by the database.
type Table[E Entity[E]] struct {
	Name string
	// Columns are the mutable columns, in the order Values and Targets use.
	Columns []string
	New     func() E
	// Values returns the column values of e in Columns order.
	Values func(e E) []any
	// Targets returns scan destinations: id first, then Columns.
	Targets func(e E) []any
}

func (t Table[E]) selectList() string {
	return "id, " + strings.Join(t.Columns, ", ")
}

func (t Table[E]) selectAllSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.Name)
}

func (t Table[E]) selectByIDSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.selectList(), t.Name)
}

func (t Table[E]) existsSQL() string {
	return fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", t.Name)
}

func (t Table[E]) insertSQL() string {
	params := make([]string, len(t.Columns))
	for i := range t.Columns {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.Name, strings.Join(t.Columns, ", "), strings.Join(params, ", "),
	)
}

func (t Table[E]) updateSQL() string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		t.Name, strings.Join(sets, ", "), len(t.Columns)+1,
	)
}

func (t Table[E]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.Name)
}

// PostgresPort implements Port with pgx.
type PostgresPort[E Entity[E]] struct {
	db    DB
	table Table[E]
}

func NewPostgresPort[E Entity[E]](db DB, table Table[E]) *PostgresPort[E] {
	return &PostgresPort[E]{db: db, table: table}
}

func (p *PostgresPort[E]) SelectAll(ctx context.Context) ([]E, error) {
	rows, err := p.db.Query(ctx, p.table.selectAllSQL())
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", p.table.Name, err)
	}
	defer rows.Close()

	out := []E{}
	for rows.Next() {
		e := p.table.New()
		if err := rows.Scan(p.table.Targets(e)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p.table.Name, err)
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", p.table.Name, err)
	}
	return out, nil
}

func (p *PostgresPort[E]) SelectByID(ctx context.Context, id int64) (E, bool, error) {
	e := p.table.New()
	err := p.db.QueryRow(ctx, p.table.selectByIDSQL(), id).Scan(p.table.Targets(e)...)
	if err != nil {
		var zero E
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to get %s by id: %w", p.table.Name, err)
	}
	return e, true, nil
}

func (p *PostgresPort[E]) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, p.table.existsSQL(), id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", p.table.Name, err)
	}
	return exists, nil
}

// Stage runs the insert inside a transaction that stays open until the
// returned Staged is committed or rolled back.
func (p *PostgresPort[E]) Stage(ctx context.Context, entity E) (Staged, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, p.table.insertSQL(), p.table.Values(entity)...).Scan(&id); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to insert into %s: %w", p.table.Name, translate(err))
	}

	return &pgStaged{tx: tx, id: id}, nil
}

func (p *PostgresPort[E]) UpdateRow(ctx context.Context, entity E) (bool, error) {
	args := append(p.table.Values(entity), entity.EntityID())

	tag, err := p.db.Exec(ctx, p.table.updateSQL(), args...)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", p.table.Name, translate(err))
	}
	return tag.RowsAffected() > 0, nil
}

func (p *PostgresPort[E]) DeleteRow(ctx context.Context, id int64) (bool, error) {
	tag, err := p.db.Exec(ctx, p.table.deleteSQL(), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", p.table.Name, translate(err))
	}
	return tag.RowsAffected() > 0, nil
}

type pgStaged struct {
	tx pgx.Tx
	id int64
}

func (s *pgStaged) ID() int64 { return s.id }

func (s *pgStaged) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return ErrStagedClosed
		}
		return fmt.Errorf("failed to commit transaction: %w", translate(err))
	}
	return nil
}

func (s *pgStaged) Rollback(ctx context.Context) error {
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// translate maps integrity constraint violations (SQLSTATE class 23)
// onto ErrRejected.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s (%s)", ErrRejected, pgErr.Message, pgErr.Code)
	}
	return err
}

package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetComicStatus(context context.Context, comicID int) (comic.PublishStatus, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Comic.PublishStatus, schema.Comic.Table, schema.Comic.ID,
	)

	var status comic.PublishStatus
	err := repository.db.QueryRow(context, query, comicID).Scan(&status)
	return status, dberr.Wrap(err, "get_comic_status")
}

func (repository *PostgresRepository) GetPosition(context context.Context, comicID int) (*int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.ComicMetadata.PublishingQueuePos, schema.ComicMetadata.Table,
		schema.ComicMetadata.ComicID,
	)

	var position *int
	err := repository.db.QueryRow(context, query, comicID).Scan(&position)
	if err != nil {
		return nil, dberr.Wrap(err, "get_queue_position")
	}
	return position, nil
}

func (repository *PostgresRepository) Swap(context context.Context, comicID, fromPos, toPos int) error {
	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_queue_swap")
	}
	defer tx.Rollback(context)

	// The displaced comic takes the vacated slot first.
	displaceQuery := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.ComicMetadata.Table, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.PublishingQueuePos,
	)
	if _, err := tx.Exec(context, displaceQuery, fromPos, toPos); err != nil {
		return dberr.Wrap(err, "queue_swap_displace")
	}

	moveQuery := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.ComicMetadata.Table, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.ComicID,
	)
	if _, err := tx.Exec(context, moveQuery, toPos, comicID); err != nil {
		return dberr.Wrap(err, "queue_swap_move")
	}

	return dberr.Wrap(tx.Commit(context), "commit_queue_swap")
}

func (repository *PostgresRepository) ListQueue(context context.Context) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT m.%s, m.%s
		FROM %s m JOIN %s c ON c.%s = m.%s
		WHERE c.%s = $1 AND m.%s IS NULL
		ORDER BY m.%s ASC NULLS LAST, m.%s ASC`,
		schema.ComicMetadata.ComicID, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.Table, schema.Comic.Table,
		schema.Comic.ID, schema.ComicMetadata.ComicID,
		schema.Comic.PublishStatus, schema.ComicMetadata.PublishDate,
		schema.ComicMetadata.PublishingQueuePos, schema.ComicMetadata.ComicID,
	)

	rows, err := repository.db.Query(context, query, comic.StatusScheduled)
	if err != nil {
		return nil, dberr.Wrap(err, "list_queue")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ComicID, &entry.Position); err != nil {
			return nil, dberr.Wrap(err, "scan_queue_entry")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (repository *PostgresRepository) ApplyPositions(context context.Context, changes []Change) error {
	if len(changes) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.ComicMetadata.Table, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.ComicID,
	)

	batch := &pgx.Batch{}
	for _, change := range changes {
		batch.Queue(query, change.Position, change.ComicID)
	}

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_apply_positions")
	}
	defer tx.Rollback(context)

	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "apply_positions")
	}
	return dberr.Wrap(tx.Commit(context), "commit_apply_positions")
}

func (repository *PostgresRepository) SetScheduled(context context.Context, comicID, modID int, publishDate *time.Time) error {
	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_schedule")
	}
	defer tx.Rollback(context)

	statusQuery := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.Comic.Table, schema.Comic.PublishStatus, schema.Comic.Updated, schema.Comic.ID,
	)
	tag, err := tx.Exec(context, statusQuery, comic.StatusScheduled, comicID)
	if err != nil {
		return dberr.Wrap(err, "schedule_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	// A dated comic holds no queue slot.
	metadataQuery := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = NULL WHERE %s = $3`,
		schema.ComicMetadata.Table, schema.ComicMetadata.ScheduleModID,
		schema.ComicMetadata.PublishDate, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.ComicID,
	)
	if _, err := tx.Exec(context, metadataQuery, modID, publishDate, comicID); err != nil {
		return dberr.Wrap(err, "schedule_metadata")
	}

	return dberr.Wrap(tx.Commit(context), "commit_schedule")
}

func (repository *PostgresRepository) ClearScheduled(context context.Context, comicID int) error {
	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_unschedule")
	}
	defer tx.Rollback(context)

	statusQuery := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.Comic.Table, schema.Comic.PublishStatus, schema.Comic.Updated, schema.Comic.ID,
	)
	tag, err := tx.Exec(context, statusQuery, comic.StatusPending, comicID)
	if err != nil {
		return dberr.Wrap(err, "unschedule_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	metadataQuery := fmt.Sprintf(`UPDATE %s SET %s = NULL, %s = NULL, %s = NULL WHERE %s = $1`,
		schema.ComicMetadata.Table, schema.ComicMetadata.ScheduleModID,
		schema.ComicMetadata.PublishDate, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.ComicID,
	)
	if _, err := tx.Exec(context, metadataQuery, comicID); err != nil {
		return dberr.Wrap(err, "unschedule_metadata")
	}

	return dberr.Wrap(tx.Commit(context), "commit_unschedule")
}

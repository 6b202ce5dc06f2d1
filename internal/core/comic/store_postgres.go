package comic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetComic(context context.Context, id int) (*Comic, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s
		FROM %s c
		JOIN %s m ON m.%s = c.%s
		WHERE c.%s = $1
	`,
		schema.Comic.ID, schema.Comic.Name, schema.Comic.Classification, schema.Comic.Category,
		schema.Comic.State, schema.Comic.NumberOfPages, schema.Comic.ArtistID, schema.Comic.PublishStatus,
		schema.Comic.Created,
		schema.ComicMetadata.UploadUserID, schema.ComicMetadata.UploadUserIP, schema.ComicMetadata.UploadID,
		schema.ComicMetadata.ErrorText, schema.ComicMetadata.PublishDate, schema.ComicMetadata.PublishingQueuePos,
		schema.ComicMetadata.ScheduleModID, schema.ComicMetadata.Verdict, schema.ComicMetadata.ModID,
		schema.ComicMetadata.PendingProblemModID, schema.ComicMetadata.Timestamp,
		schema.Comic.Table,
		schema.ComicMetadata.Table, schema.ComicMetadata.ComicID, schema.Comic.ID,
		schema.Comic.ID,
	)

	comic := &Comic{Metadata: &Metadata{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&comic.ID, &comic.Name, &comic.Classification, &comic.Category,
		&comic.State, &comic.NumberOfPages, &comic.ArtistID, &comic.PublishStatus, &comic.Created,
		&comic.Metadata.UploadUserID, &comic.Metadata.UploadUserIP, &comic.Metadata.UploadID,
		&comic.Metadata.ErrorText, &comic.Metadata.PublishDate, &comic.Metadata.PublishingQueuePos,
		&comic.Metadata.ScheduleModID, &comic.Metadata.Verdict, &comic.Metadata.ModID,
		&comic.Metadata.PendingProblemModID, &comic.Metadata.Timestamp,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comic")
	}
	comic.Metadata.ComicID = comic.ID

	tagQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.ComicKeyword.KeywordID, schema.ComicKeyword.Table,
		schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
	)

	rows, err := repository.db.Query(context, tagQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comic_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var tagID int
		if err := rows.Scan(&tagID); err != nil {
			return nil, dberr.Wrap(err, "scan_comic_tag")
		}
		comic.TagIDs = append(comic.TagIDs, tagID)
	}

	return comic, nil
}

func (repository *PostgresRepository) ListByPublishStatus(context context.Context, statuses []PublishStatus, limit, offset int) ([]*Comic, int, error) {
	statusStrings := make([]string, len(statuses))
	for i, status := range statuses {
		statusStrings[i] = string(status)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = ANY($1)`,
		schema.Comic.Table, schema.Comic.PublishStatus,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, statusStrings).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comics")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`,
		schema.Comic.ID, schema.Comic.Name, schema.Comic.Classification, schema.Comic.Category,
		schema.Comic.State, schema.Comic.NumberOfPages, schema.Comic.ArtistID, schema.Comic.PublishStatus,
		schema.Comic.Created,
		schema.Comic.Table,
		schema.Comic.PublishStatus,
		schema.Comic.ID,
	)

	rows, err := repository.db.Query(context, query, statusStrings, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comics")
	}
	defer rows.Close()

	var comics []*Comic
	for rows.Next() {
		comic := &Comic{}
		err := rows.Scan(
			&comic.ID, &comic.Name, &comic.Classification, &comic.Category,
			&comic.State, &comic.NumberOfPages, &comic.ArtistID, &comic.PublishStatus, &comic.Created,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comic")
		}
		comics = append(comics, comic)
	}

	return comics, total, nil
}

func (repository *PostgresRepository) UpdateComic(context context.Context, c *Comic) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
	`,
		schema.Comic.Table,
		schema.Comic.Name, schema.Comic.Classification, schema.Comic.Category,
		schema.Comic.State, schema.Comic.NumberOfPages, schema.Comic.ArtistID, schema.Comic.Updated,
		schema.Comic.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		c.ID, c.Name, c.Classification, c.Category, c.State, c.NumberOfPages, c.ArtistID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_comic")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetErrorText(context context.Context, comicID int, errorText *string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.ComicMetadata.Table, schema.ComicMetadata.ErrorText, schema.ComicMetadata.ComicID,
	)

	cmd, err := repository.db.Exec(context, query, comicID, errorText)
	if err != nil {
		return dberr.Wrap(err, "set_comic_error_text")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPublishStatus(context context.Context, comicID int, status PublishStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Comic.Table, schema.Comic.PublishStatus, schema.Comic.ID,
	)

	cmd, err := repository.db.Exec(context, query, comicID, status)
	if err != nil {
		return dberr.Wrap(err, "set_publish_status")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

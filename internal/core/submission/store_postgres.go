package submission

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) IsNameBanned(context context.Context, normalizedName string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.BannedComicName.Table, schema.BannedComicName.NormalizedName,
	)

	var banned bool
	if err := repository.db.QueryRow(context, query, normalizedName).Scan(&banned); err != nil {
		return false, dberr.Wrap(err, "check_banned_comic_name")
	}
	return banned, nil
}

func (repository *PostgresRepository) CreateSubmission(context context.Context, input *Input, status comic.PublishStatus, verdict *comic.Verdict) (*Result, error) {
	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return nil, dberr.Wrap(err, "begin_submission")
	}
	defer tx.Rollback(context)

	artistID, err := repository.resolveArtist(context, tx, input)
	if err != nil {
		return nil, err
	}

	comicQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`,
		schema.Comic.Table,
		schema.Comic.Name, schema.Comic.Classification, schema.Comic.Category,
		schema.Comic.State, schema.Comic.NumberOfPages, schema.Comic.ArtistID,
		schema.Comic.PublishStatus,
		schema.Comic.ID,
	)

	var comicID int
	err = tx.QueryRow(context, comicQuery,
		input.Name, input.Classification, input.Category,
		input.State, input.NumberOfPages, artistID, status,
	).Scan(&comicID)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_comic")
	}

	metadataQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.ComicMetadata.Table,
		schema.ComicMetadata.ComicID, schema.ComicMetadata.UploadUserID,
		schema.ComicMetadata.UploadUserIP, schema.ComicMetadata.UploadID,
		schema.ComicMetadata.Verdict,
	)
	if _, err := tx.Exec(context, metadataQuery,
		comicID, input.UploaderUserID, input.UploaderIP, input.UploadID, verdict,
	); err != nil {
		return nil, dberr.Wrap(err, "insert_comic_metadata")
	}

	batch := &pgx.Batch{}
	linkQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.ComicLink.Table, schema.ComicLink.FirstComic, schema.ComicLink.LastComic,
	)
	if input.PreviousComic != nil {
		batch.Queue(linkQuery, *input.PreviousComic, comicID)
	}
	if input.NextComic != nil {
		batch.Queue(linkQuery, comicID, *input.NextComic)
	}

	tagQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.ComicKeyword.Table, schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
	)
	for _, tagID := range input.TagIDs {
		batch.Queue(tagQuery, comicID, tagID)
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(context, batch).Close(); err != nil {
			return nil, dberr.Wrap(err, "insert_comic_relations")
		}
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_submission")
	}

	return &Result{
		ComicID:  comicID,
		ArtistID: artistID,
		Approved: status == comic.StatusPending,
	}, nil
}

// resolveArtist returns the existing artist id or inserts the inline artist
// (with its links) inside the submission transaction.
func (repository *PostgresRepository) resolveArtist(context context.Context, tx pgx.Tx, input *Input) (int, error) {
	if input.ArtistID != nil {
		return *input.ArtistID, nil
	}

	artistQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.Artist.Table,
		schema.Artist.Name, schema.Artist.E621Name, schema.Artist.PatreonName,
		schema.Artist.IsPending,
		schema.Artist.ID,
	)

	// A moderator's inline artist skips the pending-approval step.
	var artistID int
	err := tx.QueryRow(context, artistQuery,
		input.NewArtist.Name, input.NewArtist.E621Name, input.NewArtist.PatreonName,
		!input.SkipApproval,
	).Scan(&artistID)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_artist")
	}

	if len(input.NewArtist.Links) > 0 {
		batch := &pgx.Batch{}
		linkQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.ArtistLink.Table, schema.ArtistLink.ArtistID, schema.ArtistLink.LinkURL,
		)
		for _, link := range input.NewArtist.Links {
			batch.Queue(linkQuery, artistID, link)
		}
		if err := tx.SendBatch(context, batch).Close(); err != nil {
			return 0, dberr.Wrap(err, "insert_artist_links")
		}
	}

	return artistID, nil
}

package artist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.E621Name,
		schema.Artist.PatreonName, schema.Artist.IsPending,
		schema.Artist.Table, schema.Artist.ID,
	)

	artist := &Artist{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&artist.ID, &artist.Name, &artist.E621Name, &artist.PatreonName, &artist.IsPending,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	linkQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.ArtistLink.LinkURL, schema.ArtistLink.Table,
		schema.ArtistLink.ArtistID, schema.ArtistLink.ID,
	)

	rows, err := repository.db.Query(context, linkQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist_links")
	}
	defer rows.Close()

	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_link")
		}
		artist.Links = append(artist.Links, link)
	}

	return artist, nil
}

func (repository *PostgresRepository) ListArtists(context context.Context, search string, limit, offset int) ([]*Artist, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.E621Name,
		schema.Artist.PatreonName, schema.Artist.IsPending,
		schema.Artist.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Artist.Table)

	args := []any{}
	countArgs := []any{}

	if search != "" {
		searchTerm := "%" + search + "%"
		query += fmt.Sprintf(` WHERE %s ILIKE $1`, schema.Artist.Name)
		countQuery += fmt.Sprintf(` WHERE %s ILIKE $1`, schema.Artist.Name)
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.Artist.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		artist := &Artist{}
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.E621Name, &artist.PatreonName, &artist.IsPending); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, artist)
	}

	return artists, total, nil
}

func (repository *PostgresRepository) UpdateArtist(context context.Context, a *Artist, linksToAdd, linksToRemove []string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_artist")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
	`,
		schema.Artist.Table,
		schema.Artist.Name, schema.Artist.E621Name, schema.Artist.PatreonName,
		schema.Artist.ID,
	)

	cmd, err := transaction.Exec(context, query, a.ID, a.Name, a.E621Name, a.PatreonName)
	if err != nil {
		return dberr.Wrap(err, "update_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if len(linksToAdd) > 0 || len(linksToRemove) > 0 {
		batch := &pgx.Batch{}

		insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.ArtistLink.Table, schema.ArtistLink.ArtistID, schema.ArtistLink.LinkURL,
		)
		for _, link := range linksToAdd {
			batch.Queue(insertQuery, a.ID, link)
		}

		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
			schema.ArtistLink.Table, schema.ArtistLink.ArtistID, schema.ArtistLink.LinkURL,
		)
		for _, link := range linksToRemove {
			batch.Queue(deleteQuery, a.ID, link)
		}

		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "update_artist_links")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_artist")
	}
	return nil
}

func (repository *PostgresRepository) SetPending(context context.Context, artistID int, isPending bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Artist.Table, schema.Artist.IsPending, schema.Artist.ID,
	)

	cmd, err := repository.db.Exec(context, query, artistID, isPending)
	if err != nil {
		return dberr.Wrap(err, "set_artist_pending")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

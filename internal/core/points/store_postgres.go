package points

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

func (repository *PostgresRepository) ExistingBuckets(context context.Context, userID int, buckets []string) (map[string]bool, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = ANY($2)
	`,
		schema.ContributionPoints.YearMonth, schema.ContributionPoints.Table,
		schema.ContributionPoints.UserID, schema.ContributionPoints.YearMonth,
	)

	rows, err := repository.db.Query(context, query, userID, buckets)
	if err != nil {
		return nil, dberr.Wrap(err, "get_point_buckets")
	}
	defer rows.Close()

	existing := make(map[string]bool, len(buckets))
	for rows.Next() {
		var bucket string
		if err := rows.Scan(&bucket); err != nil {
			return nil, dberr.Wrap(err, "scan_point_bucket")
		}
		existing[bucket] = true
	}

	return existing, nil
}

func (repository *PostgresRepository) InsertBucket(context context.Context, userID int, bucket string, category Category, count int) error {
	// The column name comes from the closed category map, never from input.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
	`,
		schema.ContributionPoints.Table,
		schema.ContributionPoints.UserID, schema.ContributionPoints.YearMonth, category.Column(),
	)

	_, err := repository.db.Exec(context, query, userID, bucket, count)
	return dberr.Wrap(err, "insert_point_bucket")
}

func (repository *PostgresRepository) AddToBucket(context context.Context, userID int, bucket string, category Category, count int) error {
	column := category.Column()
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE(%s, 0) + $3
		WHERE %s = $1 AND %s = $2
	`,
		schema.ContributionPoints.Table,
		column, column,
		schema.ContributionPoints.UserID, schema.ContributionPoints.YearMonth,
	)

	_, err := repository.db.Exec(context, query, userID, bucket, count)
	return dberr.Wrap(err, "update_point_bucket")
}

func (repository *PostgresRepository) Scoreboard(context context.Context, yearMonth string, limit int) ([]*UserPoints, error) {
	columnSum := ""
	for i, column := range schema.ContributionPoints.CategoryColumns() {
		if i > 0 {
			columnSum += " + "
		}
		columnSum += fmt.Sprintf("COALESCE(p.%s, 0)", column)
	}

	query := fmt.Sprintf(`
		SELECT p.%s, u.%s, (%s) AS total
		FROM %s p
		JOIN %s u ON u.%s = p.%s
		WHERE p.%s = $1
		ORDER BY total DESC, u.%s ASC
		LIMIT $2
	`,
		schema.ContributionPoints.UserID, schema.Users.Username, columnSum,
		schema.ContributionPoints.Table,
		schema.Users.Table, schema.Users.ID, schema.ContributionPoints.UserID,
		schema.ContributionPoints.YearMonth,
		schema.Users.Username,
	)

	rows, err := repository.db.Query(context, query, yearMonth, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "scoreboard")
	}
	defer rows.Close()

	var standings []*UserPoints
	for rows.Next() {
		entry := &UserPoints{}
		if err := rows.Scan(&entry.UserID, &entry.Username, &entry.Points); err != nil {
			return nil, dberr.Wrap(err, "scan_scoreboard_row")
		}
		standings = append(standings, entry)
	}

	return standings, nil
}

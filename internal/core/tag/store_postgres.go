package tag

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

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Keyword.ID, schema.Keyword.Name, schema.Keyword.Table, schema.Keyword.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (repository *PostgresRepository) GetTag(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Keyword.ID, schema.Keyword.Name, schema.Keyword.Table, schema.Keyword.ID,
	)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, id).Scan(&tag.ID, &tag.Name)
	return tag, dberr.Wrap(err, "get_tag")
}

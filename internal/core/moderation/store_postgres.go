// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package moderation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/dberr"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/names"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetTagSuggestion(context context.Context, id int) (*TagSuggestion, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.KeywordSuggestion.ID, schema.KeywordSuggestion.ComicID,
		schema.KeywordSuggestion.KeywordID, schema.KeywordSuggestion.IsAdding,
		schema.KeywordSuggestion.Status, schema.KeywordSuggestion.UserID,
		schema.KeywordSuggestion.UserIP, schema.KeywordSuggestion.ModID,
		schema.KeywordSuggestion.Table, schema.KeywordSuggestion.ID,
	)

	suggestion := &TagSuggestion{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&suggestion.ID, &suggestion.ComicID, &suggestion.KeywordID,
		&suggestion.IsAdding, &suggestion.Status, &suggestion.UserID,
		&suggestion.UserIP, &suggestion.ModID,
	)
	return suggestion, dberr.Wrap(err, "get_tag_suggestion")
}

func (repository *PostgresRepository) ProcessTagSuggestion(context context.Context, suggestion *TagSuggestion, modID int, approved bool) error {
	status := StatusApproved
	if !approved {
		status = StatusRejected
	}

	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.KeywordSuggestion.Table, schema.KeywordSuggestion.Status,
		schema.KeywordSuggestion.ModID, schema.KeywordSuggestion.ID,
	), status, modID, suggestion.ID)

	if approved {
		if suggestion.IsAdding {
			batch.Queue(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				schema.ComicKeyword.Table, schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
			), suggestion.ComicID, suggestion.KeywordID)
		} else {
			batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
				schema.ComicKeyword.Table, schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
			), suggestion.ComicID, suggestion.KeywordID)
		}
	}

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_process_tag_suggestion")
	}
	defer tx.Rollback(context)

	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "process_tag_suggestion")
	}
	return dberr.Wrap(tx.Commit(context), "commit_process_tag_suggestion")
}

func (repository *PostgresRepository) GetTagSuggestionGroup(context context.Context, groupID int) (*TagSuggestionGroup, error) {
	groupQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.KeywordSuggestionGroup.ID, schema.KeywordSuggestionGroup.ComicID,
		schema.KeywordSuggestionGroup.UserID, schema.KeywordSuggestionGroup.UserIP,
		schema.KeywordSuggestionGroup.IsProcessed, schema.KeywordSuggestionGroup.ModID,
		schema.KeywordSuggestionGroup.Table, schema.KeywordSuggestionGroup.ID,
	)

	group := &TagSuggestionGroup{}
	err := repository.db.QueryRow(context, groupQuery, groupID).Scan(
		&group.ID, &group.ComicID, &group.UserID, &group.UserIP,
		&group.IsProcessed, &group.ModID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_suggestion_group")
	}

	itemQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.KeywordSuggestionItem.ID, schema.KeywordSuggestionItem.KeywordID,
		schema.KeywordSuggestionItem.IsAdding, schema.KeywordSuggestionItem.IsApproved,
		schema.KeywordSuggestionItem.Table, schema.KeywordSuggestionItem.GroupID,
		schema.KeywordSuggestionItem.ID,
	)

	rows, err := repository.db.Query(context, itemQuery, groupID)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_suggestion_group_items")
	}
	defer rows.Close()

	for rows.Next() {
		var item TagSuggestionItem
		if err := rows.Scan(&item.ID, &item.KeywordID, &item.IsAdding, &item.IsApproved); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_suggestion_item")
		}
		group.Items = append(group.Items, item)
	}

	return group, nil
}

func (repository *PostgresRepository) GetComicTagIDs(context context.Context, comicID int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.ComicKeyword.KeywordID, schema.ComicKeyword.Table, schema.ComicKeyword.ComicID,
	)

	rows, err := repository.db.Query(context, query, comicID)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comic_tag_ids")
	}
	defer rows.Close()

	var tagIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_comic_tag_id")
		}
		tagIDs = append(tagIDs, id)
	}
	return tagIDs, nil
}

func (repository *PostgresRepository) ApplyTagSuggestionGroup(context context.Context, group *TagSuggestionGroup, modID int, decisions []GroupDecision) error {
	batch := &pgx.Batch{}

	itemQuery := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.KeywordSuggestionItem.Table, schema.KeywordSuggestionItem.IsApproved,
		schema.KeywordSuggestionItem.ID,
	)
	addQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.ComicKeyword.Table, schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
	)
	removeQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ComicKeyword.Table, schema.ComicKeyword.ComicID, schema.ComicKeyword.KeywordID,
	)

	for _, decision := range decisions {
		batch.Queue(itemQuery, decision.IsApproved, decision.ItemID)
		if !decision.IsApproved {
			continue
		}
		if decision.IsAdding {
			batch.Queue(addQuery, group.ComicID, decision.KeywordID)
		} else {
			batch.Queue(removeQuery, group.ComicID, decision.KeywordID)
		}
	}

	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = true, %s = $1 WHERE %s = $2`,
		schema.KeywordSuggestionGroup.Table, schema.KeywordSuggestionGroup.IsProcessed,
		schema.KeywordSuggestionGroup.ModID, schema.KeywordSuggestionGroup.ID,
	), modID, group.ID)

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_apply_tag_suggestion_group")
	}
	defer tx.Rollback(context)

	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "apply_tag_suggestion_group")
	}
	return dberr.Wrap(tx.Commit(context), "commit_apply_tag_suggestion_group")
}

func (repository *PostgresRepository) GetComicProblem(context context.Context, id int) (*ComicProblem, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ComicProblem.ID, schema.ComicProblem.ComicID, schema.ComicProblem.Category,
		schema.ComicProblem.Description, schema.ComicProblem.Status, schema.ComicProblem.UserID,
		schema.ComicProblem.UserIP, schema.ComicProblem.ModID,
		schema.ComicProblem.Table, schema.ComicProblem.ID,
	)

	problem := &ComicProblem{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&problem.ID, &problem.ComicID, &problem.Category, &problem.Description,
		&problem.Status, &problem.UserID, &problem.UserIP, &problem.ModID,
	)
	return problem, dberr.Wrap(err, "get_comic_problem")
}

func (repository *PostgresRepository) ProcessComicProblem(context context.Context, id, modID int, status Status) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.ComicProblem.Table, schema.ComicProblem.Status,
		schema.ComicProblem.ModID, schema.ComicProblem.ID,
	)

	tag, err := repository.db.Exec(context, query, status, modID, id)
	if err != nil {
		return dberr.Wrap(err, "process_comic_problem")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetComicSuggestion(context context.Context, id int) (*ComicSuggestion, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ComicSuggestion.ID, schema.ComicSuggestion.Name, schema.ComicSuggestion.Description,
		schema.ComicSuggestion.Status, schema.ComicSuggestion.Verdict, schema.ComicSuggestion.ModComment,
		schema.ComicSuggestion.UserID, schema.ComicSuggestion.UserIP, schema.ComicSuggestion.ModID,
		schema.ComicSuggestion.Table, schema.ComicSuggestion.ID,
	)

	suggestion := &ComicSuggestion{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&suggestion.ID, &suggestion.Name, &suggestion.Description,
		&suggestion.Status, &suggestion.Verdict, &suggestion.ModComment,
		&suggestion.UserID, &suggestion.UserIP, &suggestion.ModID,
	)
	return suggestion, dberr.Wrap(err, "get_comic_suggestion")
}

func (repository *PostgresRepository) ProcessComicSuggestion(context context.Context, id, modID int, status Status, verdict, modComment *string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5`,
		schema.ComicSuggestion.Table, schema.ComicSuggestion.Status,
		schema.ComicSuggestion.ModID, schema.ComicSuggestion.Verdict,
		schema.ComicSuggestion.ModComment, schema.ComicSuggestion.ID,
	)

	tag, err := repository.db.Exec(context, query, status, modID, verdict, modComment, id)
	if err != nil {
		return dberr.Wrap(err, "process_comic_suggestion")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GetUploadComic(context context.Context, comicID int) (*UploadComic, error) {
	query := fmt.Sprintf(`SELECT c.%s, c.%s, c.%s, m.%s
		FROM %s c JOIN %s m ON m.%s = c.%s
		WHERE c.%s = $1`,
		schema.Comic.ID, schema.Comic.Name, schema.Comic.PublishStatus,
		schema.ComicMetadata.UploadUserID,
		schema.Comic.Table, schema.ComicMetadata.Table,
		schema.ComicMetadata.ComicID, schema.Comic.ID,
		schema.Comic.ID,
	)

	upload := &UploadComic{}
	err := repository.db.QueryRow(context, query, comicID).Scan(
		&upload.ComicID, &upload.Name, &upload.Status, &upload.UploadUserID,
	)
	return upload, dberr.Wrap(err, "get_upload_comic")
}

func (repository *PostgresRepository) ProcessUpload(context context.Context, comicID, modID int, verdict *string, newStatus string, banName *string) error {
	batch := &pgx.Batch{}

	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.Comic.Table, schema.Comic.PublishStatus, schema.Comic.Updated, schema.Comic.ID,
	), newStatus, comicID)

	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.ComicMetadata.Table, schema.ComicMetadata.Verdict,
		schema.ComicMetadata.ModID, schema.ComicMetadata.ComicID,
	), verdict, modID, comicID)

	if banName != nil {
		batch.Queue(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.BannedComicName.Table, schema.BannedComicName.Name,
			schema.BannedComicName.NormalizedName,
		), *banName, names.Normalize(*banName))
	}

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "begin_process_upload")
	}
	defer tx.Rollback(context)

	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "process_upload")
	}
	return dberr.Wrap(tx.Commit(context), "commit_process_upload")
}

// Claim performs a conditional assignment: the update only matches while the
// mod column is NULL, so exactly one racing moderator wins.
func (repository *PostgresRepository) Claim(context context.Context, actionType ActionType, targetID, modID int) (bool, error) {
	target := assignTargets[actionType]
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2 AND %s IS NULL`,
		target.table, target.modIDColumn, target.idColumn, target.modIDColumn,
	)

	tag, err := repository.db.Exec(context, query, modID, targetID)
	if err != nil {
		return false, dberr.Wrap(err, "claim_mod_action")
	}
	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) Release(context context.Context, actionType ActionType, targetID int) error {
	target := assignTargets[actionType]
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL WHERE %s = $1`,
		target.table, target.modIDColumn, target.idColumn,
	)

	tag, err := repository.db.Exec(context, query, targetID)
	if err != nil {
		return dberr.Wrap(err, "release_mod_action")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

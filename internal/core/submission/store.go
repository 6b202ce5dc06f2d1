package submission

import (
	"context"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
)

// Repository persists submissions. CreateSubmission is atomic: either every
// record lands or none do.
type Repository interface {
	IsNameBanned(context context.Context, normalizedName string) (bool, error)
	CreateSubmission(context context.Context, input *Input, status comic.PublishStatus, verdict *comic.Verdict) (*Result, error)
}

package comic

import "context"

type Repository interface {
	GetComic(context context.Context, id int) (*Comic, error)
	ListByPublishStatus(context context.Context, statuses []PublishStatus, limit, offset int) ([]*Comic, int, error)
	UpdateComic(context context.Context, c *Comic) error
	SetErrorText(context context.Context, comicID int, errorText *string) error
	SetPublishStatus(context context.Context, comicID int, status PublishStatus) error
}

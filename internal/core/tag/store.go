package tag

import "context"

type Repository interface {
	ListTags(context context.Context) ([]*Tag, error)
	GetTag(context context.Context, id int) (*Tag, error)
}

package post

import (
	"context"

	"github.com/VitaminP8/bloggery/graph/model"
)

type PostStorage interface {
	CreatePost(ctx context.Context, title, content, imageURL string) (*model.Post, error)
	GetPostById(id string) (*model.Post, error)
	// GetPostsPage - страница постов (page с единицы, новые первыми) и общее число постов
	GetPostsPage(page, perPage int) ([]*model.Post, int, error)
	GetPostsByAuthor(authorID string) ([]*model.Post, error)
	UpdatePost(id, title, content, imageURL string) (*model.Post, error)
	DeletePostById(id string) error
}

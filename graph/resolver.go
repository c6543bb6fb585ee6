package graph

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/internal/user"
)

// postsPerPage - фиксированный размер страницы списка постов
const postsPerPage = 2

// MediaStore - освобождение изображения удаленного поста
type MediaStore interface {
	Clear(path string)
}

// Resolver служит корневой точкой для всех резолверов.
// Здесь внедряются зависимости: хранилища и хранилище изображений.
type Resolver struct {
	UserStore user.UserStorage
	PostStore post.PostStorage
	Media     MediaStore
}

// NewSchema парсит схему и привязывает к ней резолверы
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}

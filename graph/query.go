package graph

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"

	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
)

// normalize гарантирует типизированную ошибку на границе:
// все неклассифицированное становится 500
func normalize(err error) error {
	return apperr.Normalize(err)
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authDataResolver, error) {
	data, err := r.UserStore.LoginUser(args.Email, args.Password)
	if err != nil {
		return nil, normalize(err)
	}

	return &authDataResolver{d: data}, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct{ Page *int32 }) (*postDataResolver, error) {
	if _, err := auth.Check(ctx); err != nil {
		return nil, err
	}

	page := 1
	if args.Page != nil && *args.Page > 0 {
		page = int(*args.Page)
	}

	posts, total, err := r.PostStore.GetPostsPage(page, postsPerPage)
	if err != nil {
		return nil, normalize(err)
	}

	return &postDataResolver{r: r, posts: posts, total: int32(total)}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*postResolver, error) {
	if _, err := auth.Check(ctx); err != nil {
		return nil, err
	}

	post, err := r.PostStore.GetPostById(string(args.ID))
	if err != nil {
		return nil, normalize(err)
	}

	return &postResolver{r: r, p: post}, nil
}

// User возвращает профиль аутентифицированного пользователя
func (r *Resolver) User(ctx context.Context) (*userResolver, error) {
	userID, err := auth.Check(ctx)
	if err != nil {
		return nil, err
	}

	user, err := r.UserStore.GetUserById(fmt.Sprint(userID))
	if err != nil {
		return nil, normalize(err)
	}

	return &userResolver{r: r, u: user}, nil
}

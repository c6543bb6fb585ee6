package graph

import (
	"time"

	"github.com/graph-gophers/graphql-go"

	"github.com/VitaminP8/bloggery/graph/model"
)

// Обертки над моделями: приводят id к строковому виду, время - к RFC 3339,
// и лениво разрешают ссылки (creator поста, посты пользователя)

type userResolver struct {
	r *Resolver
	u *model.User
}

func (ur *userResolver) ID() graphql.ID {
	return graphql.ID(ur.u.ID)
}

func (ur *userResolver) Name() string {
	return ur.u.Name
}

func (ur *userResolver) Email() string {
	return ur.u.Email
}

func (ur *userResolver) Status() string {
	return ur.u.Status
}

func (ur *userResolver) Posts() ([]*postResolver, error) {
	posts, err := ur.r.PostStore.GetPostsByAuthor(ur.u.ID)
	if err != nil {
		return nil, normalize(err)
	}
	return wrapPosts(ur.r, posts), nil
}

type postResolver struct {
	r *Resolver
	p *model.Post
}

func (pr *postResolver) ID() graphql.ID {
	return graphql.ID(pr.p.ID)
}

func (pr *postResolver) Title() string {
	return pr.p.Title
}

func (pr *postResolver) Content() string {
	return pr.p.Content
}

func (pr *postResolver) ImageURL() string {
	return pr.p.ImageURL
}

// Creator подтягивает полную запись создателя (email, имя) для ответа
func (pr *postResolver) Creator() (*userResolver, error) {
	creator, err := pr.r.UserStore.GetUserById(pr.p.AuthorID)
	if err != nil {
		return nil, normalize(err)
	}
	return &userResolver{r: pr.r, u: creator}, nil
}

func (pr *postResolver) CreatedAt() string {
	return pr.p.CreatedAt.UTC().Format(time.RFC3339)
}

func (pr *postResolver) UpdatedAt() string {
	return pr.p.UpdatedAt.UTC().Format(time.RFC3339)
}

type authDataResolver struct {
	d *model.AuthData
}

func (ar *authDataResolver) Token() string {
	return ar.d.Token
}

func (ar *authDataResolver) UserID() string {
	return ar.d.UserID
}

type postDataResolver struct {
	r     *Resolver
	posts []*model.Post
	total int32
}

func (pd *postDataResolver) Posts() []*postResolver {
	return wrapPosts(pd.r, pd.posts)
}

func (pd *postDataResolver) TotalPosts() int32 {
	return pd.total
}

func wrapPosts(r *Resolver, posts []*model.Post) []*postResolver {
	resolvers := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &postResolver{r: r, p: p})
	}
	return resolvers
}

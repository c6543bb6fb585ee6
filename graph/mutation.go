package graph

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"

	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/validation"
)

// минимальная длина пароля, заголовка и текста поста
const minInputLength = 5

// keepImageSentinel - клиент шлет литерал "undefined", если изображение не менялось
const keepImageSentinel = "undefined"

type userInput struct {
	Email    string
	Name     string
	Password string
}

type postInput struct {
	Title    string
	Content  string
	ImageURL string
}

// validatePostInput собирает все нарушения сразу, а не падает на первом
func validatePostInput(input postInput) []apperr.Issue {
	var issues []apperr.Issue
	if !validation.MinLength(input.Title, minInputLength) {
		issues = append(issues, apperr.Issue{Message: "Title too short."})
	}
	if !validation.MinLength(input.Content, minInputLength) {
		issues = append(issues, apperr.Issue{Message: "Content too short."})
	}
	return issues
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput userInput }) (*userResolver, error) {
	var issues []apperr.Issue
	if !validation.IsEmail(args.UserInput.Email) {
		issues = append(issues, apperr.Issue{Message: "Email is invalid."})
	}
	if !validation.MinLength(args.UserInput.Password, minInputLength) {
		issues = append(issues, apperr.Issue{Message: "Password too short."})
	}
	if len(issues) > 0 {
		return nil, apperr.Invalid("Invalid input!", issues)
	}

	user, err := r.UserStore.RegisterUser(args.UserInput.Email, args.UserInput.Name, args.UserInput.Password)
	if err != nil {
		return nil, normalize(err)
	}

	return &userResolver{r: r, u: user}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput postInput }) (*postResolver, error) {
	if _, err := auth.Check(ctx); err != nil {
		return nil, err
	}

	if issues := validatePostInput(args.PostInput); len(issues) > 0 {
		return nil, apperr.Invalid("Invalid input!", issues)
	}

	post, err := r.PostStore.CreatePost(ctx, args.PostInput.Title, args.PostInput.Content, args.PostInput.ImageURL)
	if err != nil {
		return nil, normalize(err)
	}

	return &postResolver{r: r, p: post}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID        graphql.ID
	PostInput postInput
}) (*postResolver, error) {
	userID, err := auth.Check(ctx)
	if err != nil {
		return nil, err
	}

	if issues := validatePostInput(args.PostInput); len(issues) > 0 {
		return nil, apperr.Invalid("Invalid input!", issues)
	}

	post, err := r.PostStore.GetPostById(string(args.ID))
	if err != nil {
		return nil, normalize(err)
	}

	// менять пост может только его создатель
	if post.AuthorID != fmt.Sprint(userID) {
		return nil, apperr.Forbidden("Not authorized!")
	}

	imageURL := args.PostInput.ImageURL
	if imageURL == keepImageSentinel {
		imageURL = post.ImageURL
	}

	updated, err := r.PostStore.UpdatePost(string(args.ID), args.PostInput.Title, args.PostInput.Content, imageURL)
	if err != nil {
		return nil, normalize(err)
	}

	return &postResolver{r: r, p: updated}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := auth.Check(ctx)
	if err != nil {
		return false, err
	}

	post, err := r.PostStore.GetPostById(string(args.ID))
	if err != nil {
		return false, normalize(err)
	}

	if post.AuthorID != fmt.Sprint(userID) {
		return false, apperr.Forbidden("Not authorized!")
	}

	if err := r.PostStore.DeletePostById(string(args.ID)); err != nil {
		return false, normalize(err)
	}

	// изображение освобождаем только после удаления записи,
	// чтобы неудавшаяся мутация не оставила пост без файла
	if r.Media != nil {
		r.Media.Clear(post.ImageURL)
	}

	return true, nil
}

func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ Status string }) (*userResolver, error) {
	userID, err := auth.Check(ctx)
	if err != nil {
		return nil, err
	}

	if validation.IsEmpty(args.Status) {
		return nil, apperr.Invalid("Invalid input!", []apperr.Issue{{Message: "Must enter a status."}})
	}

	user, err := r.UserStore.UpdateStatus(fmt.Sprint(userID), args.Status)
	if err != nil {
		return nil, normalize(err)
	}

	return &userResolver{r: r, u: user}, nil
}

package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VitaminP8/bloggery/graph/model"
	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/models"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

// parsePostID - id приходит от клиента строкой и не должен попадать в SQL как есть
// (gorm подставляет нечисловую строку в условие без экранирования).
// Всё, что не число - несуществующая запись
func parsePostID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Could not find post.")
	}
	return uint(n), nil
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, title, content, imageURL string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthenticated("Not authenticated!")
	}

	// создатель должен существовать на момент создания поста
	var user models.User
	if err := DB.First(&user, userID).Error; err != nil {
		return nil, apperr.Unauthenticated("Invalid user!")
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
		UserID:   userID,
	}

	err = DB.Create(post).Error
	if err != nil {
		return nil, apperr.Internal("could not create post: " + err.Error())
	}

	return toModelPost(post), nil
}

func (s *PostPostgresStorage) GetPostById(id string) (*model.Post, error) {
	postID, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = DB.First(&post, postID).Error
	if err != nil {
		return nil, apperr.NotFound("Could not find post.")
	}

	return toModelPost(&post), nil
}

func (s *PostPostgresStorage) GetPostsPage(page, perPage int) ([]*model.Post, int, error) {
	if page < 1 {
		page = 1
	}

	// общее количество считается по всей таблице, независимо от окна страницы
	var total int
	err := DB.Model(&models.Post{}).Count(&total).Error
	if err != nil {
		return nil, 0, apperr.Internal("could not count posts: " + err.Error())
	}

	var posts []models.Post
	err = DB.Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, apperr.Internal("could not get posts: " + err.Error())
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toModelPost(&posts[i]))
	}

	return results, total, nil
}

func (s *PostPostgresStorage) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	var posts []models.Post
	err := DB.Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, apperr.Internal("could not get posts: " + err.Error())
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toModelPost(&posts[i]))
	}

	return results, nil
}

func (s *PostPostgresStorage) UpdatePost(id, title, content, imageURL string) (*model.Post, error) {
	postID, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = DB.First(&post, postID).Error
	if err != nil {
		return nil, apperr.NotFound("Could not find post.")
	}

	post.Title = title
	post.Content = content
	post.ImageURL = imageURL

	err = DB.Save(&post).Error
	if err != nil {
		return nil, apperr.Internal("could not update post: " + err.Error())
	}

	return toModelPost(&post), nil
}

func (s *PostPostgresStorage) DeletePostById(id string) error {
	postID, err := parsePostID(id)
	if err != nil {
		return err
	}

	var post models.Post
	err = DB.First(&post, postID).Error
	if err != nil {
		return apperr.NotFound("Could not find post.")
	}

	// запись удаляется вместе со связью с владельцем (user_id - внешний ключ записи)
	err = DB.Delete(&models.Post{}, "id = ?", post.ID).Error
	if err != nil {
		return apperr.Internal("could not delete post: " + err.Error())
	}

	return nil
}

func toModelPost(post *models.Post) *model.Post {
	return &model.Post{
		ID:        fmt.Sprint(post.ID),
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		AuthorID:  fmt.Sprint(post.UserID),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

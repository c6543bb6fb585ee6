package mocks

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/bloggery/graph/model"
	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
)

type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextId int
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[string]*model.Post),
		nextId: 1,
	}
}

func (m *MockPostStorage) CreatePost(ctx context.Context, title, content, imageURL string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthenticated("Not authenticated!")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := strconv.Itoa(m.nextId)
	m.nextId++

	now := time.Now()
	post := &model.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		AuthorID:  fmt.Sprint(userID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.posts[id] = post
	return post, nil
}

func (m *MockPostStorage) GetPostById(id string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("Could not find post.")
	}
	return post, nil
}

func (m *MockPostStorage) GetPostsPage(page, perPage int) ([]*model.Post, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := make([]*model.Post, 0, len(m.posts))
	for _, post := range m.posts {
		sorted = append(sorted, post)
	}
	sort.Slice(sorted, func(i, j int) bool {
		idI, _ := strconv.Atoi(sorted[i].ID)
		idJ, _ := strconv.Atoi(sorted[j].ID)
		return idI > idJ
	})

	total := len(sorted)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return sorted[start:end], total, nil
}

func (m *MockPostStorage) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []*model.Post
	for _, post := range m.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *MockPostStorage) UpdatePost(id, title, content, imageURL string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("Could not find post.")
	}
	post.Title = title
	post.Content = content
	post.ImageURL = imageURL
	post.UpdatedAt = time.Now()
	return post, nil
}

func (m *MockPostStorage) DeletePostById(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return apperr.NotFound("Could not find post.")
	}
	delete(m.posts, id)
	return nil
}

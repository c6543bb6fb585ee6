package memory

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
	"github.com/VitaminP8/bloggery/internal/user"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	users  user.UserStorage // для проверки, что создатель существует
	nextId int
}

func NewPostMemoryStorage(users user.UserStorage) *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[string]*model.Post),
		users:  users,
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, title, content, imageURL string) (*model.Post, error) {
	// Контекст — read-only, заполняется один раз на границе запроса
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthenticated("Not authenticated!")
	}

	authorID := fmt.Sprint(userID)
	if _, err := s.users.GetUserById(authorID); err != nil {
		return nil, apperr.Unauthenticated("Invalid user!")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextId)
	s.nextId++

	now := time.Now()
	post := &model.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.posts[id] = post

	p := *post
	return &p, nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, apperr.NotFound("Could not find post.")
	}

	p := *post
	return &p, nil
}

func (s *PostMemoryStorage) GetPostsPage(page, perPage int) ([]*model.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.sortedPosts()
	total := len(sorted)

	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	posts := make([]*model.Post, 0, end-start)
	for _, post := range sorted[start:end] {
		p := *post
		posts = append(posts, &p)
	}

	return posts, total, nil
}

func (s *PostMemoryStorage) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*model.Post
	for _, post := range s.sortedPosts() {
		if post.AuthorID == authorID {
			p := *post
			posts = append(posts, &p)
		}
	}

	return posts, nil
}

func (s *PostMemoryStorage) UpdatePost(id, title, content, imageURL string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, apperr.NotFound("Could not find post.")
	}

	post.Title = title
	post.Content = content
	post.ImageURL = imageURL
	post.UpdatedAt = time.Now()

	p := *post
	return &p, nil
}

func (s *PostMemoryStorage) DeletePostById(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[id]; !exists {
		return apperr.NotFound("Could not find post.")
	}

	delete(s.posts, id)
	return nil
}

// sortedPosts - посты новые первыми; при равном времени создания
// выше пост с большим id (порядок вставки). Вызывать под мьютексом
func (s *PostMemoryStorage) sortedPosts() []*model.Post {
	sorted := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		sorted = append(sorted, post)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		idI, _ := strconv.Atoi(sorted[i].ID)
		idJ, _ := strconv.Atoi(sorted[j].ID)
		return idI > idJ
	})

	return sorted
}

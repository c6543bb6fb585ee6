package memory

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
)

// setupPostStorage - хранилище постов с одним зарегистрированным пользователем
// и контекстом, аутентифицированным от его имени
func setupPostStorage(t *testing.T) (*PostMemoryStorage, context.Context, string) {
	userStorage := NewUserMemoryStorage()
	user, err := userStorage.RegisterUser("author@example.com", "Author", "password123")
	require.NoError(t, err)

	userIDInt, err := strconv.Atoi(user.ID)
	require.NoError(t, err)

	ctx := auth.WithUserID(context.Background(), uint(userIDInt))
	return NewPostMemoryStorage(userStorage), ctx, user.ID
}

func TestPostMemoryStorage_CreatePost(t *testing.T) {
	storage, ctx, authorID := setupPostStorage(t)

	t.Run("Successful post creation", func(t *testing.T) {
		post, err := storage.CreatePost(ctx, "Hello World", "Some content here", "images/pic.png")
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "Hello World", post.Title)
		assert.Equal(t, "Some content here", post.Content)
		assert.Equal(t, "images/pic.png", post.ImageURL)
		assert.Equal(t, authorID, post.AuthorID)
		// свежесозданный пост: created == updated
		assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
	})

	t.Run("Error when no authorization", func(t *testing.T) {
		_, err := storage.CreatePost(context.Background(), "Title", "Content", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
	})

	t.Run("Error when creator does not exist", func(t *testing.T) {
		ghostCtx := auth.WithUserID(context.Background(), 999)

		_, err := storage.CreatePost(ghostCtx, "Title", "Content", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
	})
}

func TestPostMemoryStorage_GetPostById(t *testing.T) {
	storage, ctx, _ := setupPostStorage(t)

	post, err := storage.CreatePost(ctx, "Test Post", "Content here", "")
	require.NoError(t, err)

	t.Run("Returns created post", func(t *testing.T) {
		got, err := storage.GetPostById(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, post.Title, got.Title)
	})

	t.Run("Missing post fails with 404", func(t *testing.T) {
		_, err := storage.GetPostById("non-existent-id")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

func TestPostMemoryStorage_GetPostsPage(t *testing.T) {
	storage, ctx, _ := setupPostStorage(t)

	for i := 1; i <= 5; i++ {
		_, err := storage.CreatePost(ctx, fmt.Sprintf("Post %d", i), fmt.Sprintf("Content %d", i), "")
		require.NoError(t, err)
	}

	t.Run("First page is newest first", func(t *testing.T) {
		posts, total, err := storage.GetPostsPage(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 2)
		assert.Equal(t, "Post 5", posts[0].Title)
		assert.Equal(t, "Post 4", posts[1].Title)
	})

	t.Run("Second page of five posts", func(t *testing.T) {
		posts, total, err := storage.GetPostsPage(2, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 2)
		assert.Equal(t, "Post 3", posts[0].Title)
		assert.Equal(t, "Post 2", posts[1].Title)
	})

	t.Run("Last page is short", func(t *testing.T) {
		posts, total, err := storage.GetPostsPage(3, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 1)
		assert.Equal(t, "Post 1", posts[0].Title)
	})

	t.Run("Page past the end is empty, total unchanged", func(t *testing.T) {
		posts, total, err := storage.GetPostsPage(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, posts)
	})
}

func TestPostMemoryStorage_GetPostsByAuthor(t *testing.T) {
	userStorage := NewUserMemoryStorage()
	storage := NewPostMemoryStorage(userStorage)

	first, err := userStorage.RegisterUser("first@example.com", "First", "password123")
	require.NoError(t, err)
	second, err := userStorage.RegisterUser("second@example.com", "Second", "password123")
	require.NoError(t, err)

	ctxFor := func(id string) context.Context {
		idInt, err := strconv.Atoi(id)
		require.NoError(t, err)
		return auth.WithUserID(context.Background(), uint(idInt))
	}

	_, err = storage.CreatePost(ctxFor(first.ID), "First post", "Content", "")
	require.NoError(t, err)
	_, err = storage.CreatePost(ctxFor(second.ID), "Second post", "Content", "")
	require.NoError(t, err)

	posts, err := storage.GetPostsByAuthor(first.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "First post", posts[0].Title)
}

func TestPostMemoryStorage_UpdatePost(t *testing.T) {
	storage, ctx, _ := setupPostStorage(t)

	post, err := storage.CreatePost(ctx, "Before update", "Old content", "images/old.png")
	require.NoError(t, err)

	t.Run("Updates fields and bumps updated time", func(t *testing.T) {
		updated, err := storage.UpdatePost(post.ID, "After update", "New content", "images/new.png")
		require.NoError(t, err)
		assert.Equal(t, "After update", updated.Title)
		assert.Equal(t, "New content", updated.Content)
		assert.Equal(t, "images/new.png", updated.ImageURL)
		assert.True(t, updated.CreatedAt.Equal(post.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("Missing post fails with 404", func(t *testing.T) {
		_, err := storage.UpdatePost("non-existent-id", "Title", "Content", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

func TestPostMemoryStorage_DeletePostById(t *testing.T) {
	storage, ctx, authorID := setupPostStorage(t)

	post, err := storage.CreatePost(ctx, "Doomed post", "Content", "")
	require.NoError(t, err)

	t.Run("Successfully delete post", func(t *testing.T) {
		err := storage.DeletePostById(post.ID)
		require.NoError(t, err)

		_, err = storage.GetPostById(post.ID)
		assert.Error(t, err)

		// пост исчезает и из коллекции автора
		posts, err := storage.GetPostsByAuthor(authorID)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Deleting non-existent post fails with 404", func(t *testing.T) {
		err := storage.DeletePostById("non-existent-id")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

func TestPostMemoryStorage_ConcurrentCreation(t *testing.T) {
	storage, ctx, _ := setupPostStorage(t)

	var wg sync.WaitGroup
	numGoroutines := 10

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			_, err := storage.CreatePost(ctx, fmt.Sprintf("Concurrent %d", idx), "Content", "")
			assert.NoError(t, err)
		}(i)
	}

	wg.Wait()

	_, total, err := storage.GetPostsPage(1, 2)
	require.NoError(t, err)
	assert.Equal(t, numGoroutines, total)
}

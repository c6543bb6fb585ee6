package postgres

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/models"
)

func TestUserPostgresStorage_RegisterUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Successful user registration", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		user, err := storage.RegisterUser("test@example.com", "Test User", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "Test User", user.Name)
	})

	t.Run("Register user with duplicate email", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		// Первая регистрация должна быть успешной
		_, err := storage.RegisterUser("duplicate@example.com", "First", "password123")
		require.NoError(t, err)

		// Вторая регистрация с тем же email — конфликт, запись одна
		_, err = storage.RegisterUser("duplicate@example.com", "Second", "anotherpassword")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperr.StatusOf(err))
	})
}

func TestUserPostgresStorage_RegisterUser_Race(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	// при гонке двух регистраций проверка до вставки пропускает обе,
	// вторую ловит unique constraint - его ошибка должна читаться как дубликат
	first := &models.User{Email: "race@example.com", Password: "hash", Name: "First"}
	require.NoError(t, DB.Create(first).Error)

	second := &models.User{Email: "race@example.com", Password: "hash", Name: "Second"}
	err := DB.Create(second).Error
	require.Error(t, err)
	assert.True(t, isDuplicateErr(err))
}

func TestUserPostgresStorage_InjectionShapedIDs(t *testing.T) {
	storage := NewUserPostgresStorage()

	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	_, err := storage.RegisterUser("victim@example.com", "Victim", "password123")
	require.NoError(t, err)

	t.Run("GetUserById rejects non-numeric ids", func(t *testing.T) {
		_, err := storage.GetUserById("id = 1 OR 1=1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})

	t.Run("UpdateStatus rejects non-numeric ids", func(t *testing.T) {
		_, err := storage.UpdateStatus("1 OR 1=1", "pwned")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

func TestUserPostgresStorage_LoginUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	originalJWTSecret := os.Getenv("JWT_SECRET")
	err := os.Setenv("JWT_SECRET", "test_secret_key_for_jwt")
	require.NoError(t, err)
	defer os.Setenv("JWT_SECRET", originalJWTSecret)

	t.Run("Successful login", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		registered, err := storage.RegisterUser("login@example.com", "Login User", "loginpassword123")
		require.NoError(t, err)

		data, err := storage.LoginUser("login@example.com", "loginpassword123")
		require.NoError(t, err)
		assert.NotEmpty(t, data.Token)
		assert.Equal(t, registered.ID, data.UserID)
	})

	t.Run("Login with incorrect password", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.RegisterUser("login2@example.com", "Login User", "rightpassword")
		require.NoError(t, err)

		_, err = storage.LoginUser("login2@example.com", "wrongpassword")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
	})

	t.Run("Login with non-existent user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.LoginUser("nonexistent@example.com", "anypassword")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
	})
}

func TestUserPostgresStorage_GetUserById(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Returns registered user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		registered, err := storage.RegisterUser("get@example.com", "Get User", "password123")
		require.NoError(t, err)

		got, err := storage.GetUserById(registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "get@example.com", got.Email)
		assert.Equal(t, "Get User", got.Name)
	})

	t.Run("Missing user fails with 404", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.GetUserById("12345")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

func TestUserPostgresStorage_UpdateStatus(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Updates status", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		registered, err := storage.RegisterUser("status@example.com", "Status User", "password123")
		require.NoError(t, err)

		updated, err := storage.UpdateStatus(registered.ID, "Hello there")
		require.NoError(t, err)
		assert.Equal(t, "Hello there", updated.Status)

		got, err := storage.GetUserById(registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello there", got.Status)
	})

	t.Run("Missing user fails with 404", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.UpdateStatus("12345", "Hello")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	})
}

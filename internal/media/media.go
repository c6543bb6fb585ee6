// internal/media/media.go
package media

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// разрешенные типы загружаемых изображений -> расширение файла
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpg":  ".jpg",
	"image/jpeg": ".jpeg",
}

var ErrUnsupportedType = errors.New("unsupported media type")

// Store сохраняет загруженные изображения на диск под уникальными именами
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Accepts сообщает, принимается ли заявленный media type
func (s *Store) Accepts(mimeType string) bool {
	_, ok := allowedTypes[mimeType]
	return ok
}

// Save записывает файл под свежим uuid-именем с расширением по заявленному типу.
// Возвращает путь к файлу с прямыми слешами независимо от ОС
func (s *Store) Save(src io.Reader, mimeType string) (string, error) {
	ext, ok := allowedTypes[mimeType]
	if !ok {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", err
	}

	return filepath.ToSlash(fullPath), nil
}

// Clear удаляет ранее сохраненный файл. Ошибки не возвращает:
// удаление старого изображения - побочный эффект, который не должен
// ронять запрос; отсутствующий файл - не ошибка (повторная доставка)
func (s *Store) Clear(path string) {
	if path == "" {
		return
	}

	// путь не должен выходить за пределы каталога изображений
	cleaned := filepath.Clean(filepath.FromSlash(path))
	rel, err := filepath.Rel(s.dir, cleaned)
	if err != nil || strings.HasPrefix(rel, "..") {
		log.Printf("media: refusing to clear path outside %s: %s", s.dir, path)
		return
	}

	err = os.Remove(cleaned)
	if err != nil && !os.IsNotExist(err) {
		log.Printf("media: failed to clear %s: %v", path, err)
	}
}

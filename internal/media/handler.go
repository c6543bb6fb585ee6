// internal/media/handler.go
package media

import (
	"encoding/json"
	"net/http"

	"github.com/VitaminP8/bloggery/internal/apperr"
	"github.com/VitaminP8/bloggery/internal/auth"
)

const maxUploadSize = 10 << 20 // 10 MiB

// UploadResponse - ответ PUT /post-image
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath,omitempty"`
}

// UploadHandler принимает один файл изображения в поле "image".
// Необязательное поле формы oldPath - путь заменяемого изображения,
// старый файл удаляется best-effort после сохранения нового
func UploadHandler(store *Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			writeError(w, apperr.New(http.StatusMethodNotAllowed, "Method not allowed"))
			return
		}

		if _, err := auth.Check(r.Context()); err != nil {
			writeError(w, apperr.Normalize(err))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			// нет тела/файла - не ошибка запроса, отвечаем как "файл не приложен"
			writeJSON(w, http.StatusOK, UploadResponse{Message: "No file provided!"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeJSON(w, http.StatusOK, UploadResponse{Message: "No file provided!"})
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")
		if !store.Accepts(mimeType) {
			// неподдерживаемый тип молча отбрасываем, запрос не роняем
			writeJSON(w, http.StatusOK, UploadResponse{Message: "No file provided!"})
			return
		}

		filePath, err := store.Save(file, mimeType)
		if err != nil {
			writeError(w, apperr.Internal("could not store file"))
			return
		}

		if oldPath := r.FormValue("oldPath"); oldPath != "" {
			store.Clear(oldPath)
		}

		writeJSON(w, http.StatusCreated, UploadResponse{
			Message:  "File stored.",
			FilePath: filePath,
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err *apperr.Error) {
	body := map[string]interface{}{"message": err.Message}
	if len(err.Data) > 0 {
		body["data"] = err.Data
	}
	writeJSON(w, err.Status, body)
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/graph-gophers/graphql-go/relay"

	"github.com/VitaminP8/bloggery/graph"
	"github.com/VitaminP8/bloggery/internal/auth"
	"github.com/VitaminP8/bloggery/internal/config"
	"github.com/VitaminP8/bloggery/internal/media"
	"github.com/VitaminP8/bloggery/internal/post"
	"github.com/VitaminP8/bloggery/internal/storage/memory"
	"github.com/VitaminP8/bloggery/internal/storage/postgres"
	"github.com/VitaminP8/bloggery/internal/user"
	"github.com/VitaminP8/bloggery/models"
)

const imagesDir = "images"

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	var postStore post.PostStorage
	var userStore user.UserStorage

	switch *storageType {
	case "postgres":
		if err := postgres.InitDB(); err != nil {
			log.Fatalf("failed to init database: %v", err)
		}
		err := postgres.DB.AutoMigrate(&models.User{}, &models.Post{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		userStore = postgres.NewUserPostgresStorage()
		postStore = postgres.NewPostPostgresStorage()

	case "memory":
		log.Println("Используется in-memory хранилище")
		memUserStore := memory.NewUserMemoryStorage()
		userStore = memUserStore
		postStore = memory.NewPostMemoryStorage(memUserStore)

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	mediaStore := media.NewStore(imagesDir)

	// Инициализация резолвера
	resolver := &graph.Resolver{
		UserStore: userStore,
		PostStore: postStore,
		Media:     mediaStore,
	}

	schema := graph.NewSchema(resolver)
	gqlHandler := &relay.Handler{Schema: schema}

	mux := http.NewServeMux()
	// AuthMiddleware вытаскивает JWT из заголовка, валидирует и кладет userID в context;
	// 401 для защищенных операций поднимают сами резолверы
	mux.Handle("/graphql", auth.AuthMiddleware(gqlHandler))
	// Загрузка изображений (PUT /post-image) - единственный не-GraphQL endpoint
	mux.Handle("/post-image", auth.AuthMiddleware(media.UploadHandler(mediaStore)))
	// Ранее загруженные изображения раздаются статикой
	mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))
	// Страница с тестовым интерфейсом
	mux.Handle("/", graph.PlaygroundHandler("GraphQL Playground", "/graphql"))

	// HTTP сервер
	addr := ":" + config.GetEnvDefault("PORT", "8080")
	server := &http.Server{
		Addr:    addr,
		Handler: corsMiddleware(mux),
	}

	// запуск HTTP сервера в goroutine - ListenAndServe блокирует до Shutdown
	go func() {
		log.Printf("Сервер запущен на http://localhost%s/", addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // ждет сигнал

	log.Println("Завершение...")

	if *storageType == "postgres" {
		postgres.CloseDB()
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}

// corsMiddleware - разрешающая CORS-политика (origin *)
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

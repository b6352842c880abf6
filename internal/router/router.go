package router

import (
	"database/sql"
	"net/http"
	"os"

	diskfiles "petweb/internal/adapters/files/disk"
	mem "petweb/internal/adapters/storage/memory"
	pg "petweb/internal/adapters/storage/postgres"
	"petweb/internal/domain/cats"
	"petweb/internal/domain/messages"
	"petweb/internal/domain/users"
	"petweb/internal/middleware"
	"petweb/internal/platform/logger"

	_ "petweb/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Directorio donde se guardan las fotos subidas.
	UploadDir string

	// Secreto HS256 para los tokens de login.
	JWTSecret string

	Logger *zap.SugaredLogger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		catRepo     cats.Repository
		userRepo    users.Repository
		messageRepo messages.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		catRepo = pg.NewCatsRepo(db)
		userRepo = pg.NewUsersRepo(db)
		messageRepo = pg.NewMessagesRepo(db)
	} else {
		catRepo = mem.NewCatRepo()
		userRepo = mem.NewUserRepo()
		messageRepo = mem.NewMessageRepo()
	}

	uploadDir := opts.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	uploads, err := diskfiles.NewStore(uploadDir)
	if err != nil {
		return nil, err
	}

	// Services por módulo
	catsSvc := cats.NewService(catRepo)
	usersSvc := users.NewService(userRepo, opts.JWTSecret)
	messagesSvc := messages.NewService(messageRepo)

	// Rutas por módulo
	cats.RegisterRoutes(r, catsSvc, uploads, log)
	users.RegisterRoutes(r, usersSvc, log)
	messages.RegisterRoutes(r, messagesSvc, log)

	// Archivos subidos, servidos estáticos por nombre generado
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Get("/api-docs/*", httpSwagger.WrapHandler)

	return r, nil
}

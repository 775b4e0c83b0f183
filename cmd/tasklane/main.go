package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgrepo "github.com/tasklane/tasklane/internal/adapters/db/postgres"
	redisrepo "github.com/tasklane/tasklane/internal/adapters/db/redis"
	"github.com/tasklane/tasklane/internal/adapters/googlebooks"
	transport "github.com/tasklane/tasklane/internal/adapters/transport/http"
	"github.com/tasklane/tasklane/internal/app/address"
	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/app/book"
	"github.com/tasklane/tasklane/internal/app/todo"
	"github.com/tasklane/tasklane/internal/app/user"
	"github.com/tasklane/tasklane/internal/config"
	"github.com/tasklane/tasklane/internal/domain/repo"
	lg "github.com/tasklane/tasklane/internal/infra/log"
	"github.com/tasklane/tasklane/internal/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		lg.Must("info").Fatal("failed to load config", zap.Error(err))
	}

	zapLog := lg.Must(cfg.LogLevel)
	defer zapLog.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	// Without redis the token layer stays stateless: logout becomes a
	// no-op and tokens live until they expire.
	var tokenRepo repo.TokenRepo
	if cfg.RedisAddr != "" {
		redisCli := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisCli.Close()
		tokenRepo = redisrepo.NewTokenRepo(redisCli)
	}

	validate := validator.New()

	tokens, err := auth.NewTokens(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token signer", zap.Error(err))
	}

	userRepo := pgrepo.NewUserRepo(db)
	bookSvc := book.New(pgrepo.NewBookRepo(db), validate)

	svcs := transport.Services{
		Auth:      auth.New(userRepo, tokenRepo, tokens, validate),
		Todos:     todo.New(pgrepo.NewTodoRepo(db), validate),
		Users:     user.New(userRepo, validate),
		Addresses: address.New(pgrepo.NewAddressRepo(db), validate),
		Books:     bookSvc,
	}

	router := transport.NewRouter(cfg, zapLog, svcs)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(rootCtx)

	if cfg.GoogleBooksImport {
		g.Go(func() error {
			if err := bookSvc.RunImport(ctx, googlebooks.New(cfg.GoogleBooksURL)); err != nil {
				zapLog.Error("catalog import failed", zap.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}

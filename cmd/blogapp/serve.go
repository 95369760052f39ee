package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"blogapp/internal/logger"
	"blogapp/internal/routing"
	"blogapp/pkg/post"
	"blogapp/pkg/render"
	"blogapp/pkg/session"
	"blogapp/pkg/user"
	"blogapp/web"

	"github.com/spf13/cobra"
)

const sessionCleanupInterval = 5 * time.Minute

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *envFile)
		},
	}
}

func serve(ctx context.Context, envFile string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	log := logger.Load(cfg.LogLevel, cfg.LogFormat)

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.BackendTimeout)
	err = b.posts.Ping(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("error connecting to post store, check its URL and keys: %w", err)
	}
	log.Info("connected to post store")

	if b.sqlSessions != nil {
		go b.sqlSessions.RunCleanup(ctx, sessionCleanupInterval, func(err error) {
			log.Error("session cleanup", slog.Any("error", err))
		})
	}

	pages, err := render.New(web.Templates(), log)
	if err != nil {
		return err
	}

	sessions := session.NewManager(b.sessions, session.Options{
		Secure: cfg.IsProduction(),
		Secret: cfg.SessionSecret,
	}, log)

	handler := routing.NewRouter(routing.Deps{
		Posts:    post.NewService(b.posts),
		Users:    user.NewService(b.identity),
		Sessions: sessions,
		Pages:    pages,
		Static:   web.Static(),
		Logger:   log,
	})

	return routing.StartServer(ctx, ":"+cfg.Port, handler, log, 10*time.Second)
}

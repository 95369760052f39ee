package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"blogapp/internal/config"
	"blogapp/internal/mongo"
	"blogapp/internal/mysql"
	"blogapp/internal/postgres"
	"blogapp/internal/redis"
	"blogapp/internal/supabase"
	"blogapp/pkg/post"
	"blogapp/pkg/session"
	"blogapp/pkg/user"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// backends holds every store selected by configuration.
type backends struct {
	posts    post.Repository
	identity user.IdentityProvider
	sessions scs.Store
	// sqlSessions is set when sessions live in MySQL and need sweeping.
	sqlSessions *session.SQLStore

	closers []func()
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *backends, err error) {
	b := &backends{}
	defer func() {
		if err != nil {
			b.Close()
		}
	}()

	var sb *supabase.Client
	if cfg.UsesSupabase() {
		sb, err = supabase.New(supabase.Config{
			URL:        cfg.Supabase.URL,
			ServiceKey: cfg.Supabase.ServiceKey,
			PublicKey:  cfg.Supabase.PublicKey(),
			JWTSecret:  cfg.Supabase.JWTSecret,
			Timeout:    cfg.BackendTimeout,
		})
		if err != nil {
			return nil, err
		}
	}

	var db *sql.DB
	if cfg.UsesMySQL() {
		db, err = mysql.LoadDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { db.Close() })
	}

	switch cfg.PostBackend {
	case config.BackendPostgres:
		pool, err := postgres.LoadPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)
		b.posts = post.NewPostgresRepo(pool)
	case config.BackendMongo:
		client, mdb, err := mongo.LoadDB(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Disconnect(context.Background()) })
		b.posts = post.NewMongoRepo(mdb)
	default:
		b.posts = post.NewSupabaseRepo(sb)
	}

	switch cfg.IdentityBackend {
	case config.BackendLocal:
		b.identity = user.NewLocalProvider(user.NewMySQLRepo(db))
	default:
		b.identity = user.NewSupabaseProvider(sb)
	}

	switch cfg.SessionBackend {
	case config.BackendRedis:
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { rdb.Close() })
		b.sessions = session.NewRedisStore(rdb)
	case config.BackendMySQL:
		b.sqlSessions = session.NewSQLStore(db)
		b.sessions = b.sqlSessions
	default:
		b.sessions = memstore.New()
	}

	logger.Info("backends ready",
		slog.String("posts", cfg.PostBackend),
		slog.String("identity", cfg.IdentityBackend),
		slog.String("sessions", cfg.SessionBackend),
	)
	return b, nil
}

func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// Command server runs the textmorph backend: session auth, account settings,
// and the text transformation proxy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/textmorph/account"
	"github.com/kbukum/textmorph/auth/password"
	"github.com/kbukum/textmorph/auth/token"
	"github.com/kbukum/textmorph/config"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/server"
	"github.com/kbukum/textmorph/server/middleware"
	"github.com/kbukum/textmorph/store"
	"github.com/kbukum/textmorph/transform"
)

const serviceName = "textmorph"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(&cfg.Log, serviceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	codec, err := token.NewCodec(cfg.Token)
	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}
	hasher := password.NewHasher(cfg.Password)

	accountSvc := account.NewService(db, hasher, codec, log)
	transformSvc := transform.NewService(db, transform.NewOpenAIClient(cfg.LLM), log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(log)
	srv.RegisterHealth(serviceName)

	authMW := middleware.Auth(codec, db, log)
	account.NewHandler(accountSvc).RegisterRoutes(srv.GinEngine(), authMW)
	transform.NewHandler(transformSvc).RegisterRoutes(srv.GinEngine(), authMW)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}

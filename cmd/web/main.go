package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
	"SimpleMercari/internal/middleware"
	"SimpleMercari/internal/web"
)

func main() {
	cfg := config.NewConfig()
	// веб-сервер пишет лог в stderr, а не в файл клиента
	cfg.LogFile = ""

	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		panic(err)
	}
	sugar := deps.Logger
	middleware.SetLogger(sugar) // передаём логгер в middleware
	defer func() {
		if err := done(); err != nil {
			sugar.Errorw("Failed to close dependencies", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	h := web.NewHandler(deps.Client, deps.Listings, sugar, cfg.ListStyle)

	addr := cfg.BaseURL
	sugar.Infow(
		"Starting server",
		"addr", addr,
	)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"APIURL", cfg.APIURL,
		"HistoryDSN", cfg.HistoryDSN,
		"ListStyle", cfg.ListStyle,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Errorw("Server failed", "error", err)
	}
}

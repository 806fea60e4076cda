package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jo3qma.com/zona_apk/internal/config"
	"jo3qma.com/zona_apk/internal/handler"
	"jo3qma.com/zona_apk/internal/infrastructure/datafile"
	"jo3qma.com/zona_apk/internal/logging"
	"jo3qma.com/zona_apk/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// ロガーの設定もここで読むため、標準エラーに出して終了する
		fmt.Fprintf(os.Stderr, "❌ failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// 依存関係の組み立て（依存性注入）
	// カタログはファイルから一度だけ読み込み、以降はメモリ上のスナップショットを使う
	repo := datafile.NewFileRepository(cfg.Catalog.DataPath, logger)
	uc := usecase.NewCatalogUsecase(repo,
		usecase.WithPageSize(cfg.Catalog.PageSize),
		usecase.WithLocale(cfg.Catalog.LocaleTag()),
		usecase.WithLogger(logger),
	)

	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer warmCancel()
	if err := uc.Warm(warmCtx); err != nil {
		logger.Fatal("❌ failed to load catalog", zap.String("path", cfg.Catalog.DataPath), zap.Error(err))
	}

	h := handler.NewCatalogHandler(uc, uc, logger)

	// Connectハンドラーの登録
	mux := http.NewServeMux()
	path, svc := handler.NewCatalogServiceHandler(h)
	mux.Handle(path, svc)

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンの設定
	go func() {
		logger.Info("🚀 Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Server failed to start", zap.Error(err))
		}
	}()

	// シグナル待機（Ctrl+Cなど）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("🛑 Shutting down server...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server exited")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/idcardgen/internal/api"
	"github.com/youruser/idcardgen/internal/config"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/institution"
	"github.com/youruser/idcardgen/internal/logger"
	"github.com/youruser/idcardgen/internal/render"
	"github.com/youruser/idcardgen/internal/template"
)

func main() {
	cfg := config.Load()
	log, err := logger.Initialize(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	fonts, err := imagepkg.LoadFontBook(cfg.AssetsDir)
	if err != nil {
		log.Fatal("load fonts", zap.Error(err))
	}

	ctx := context.Background()
	resolver := imagepkg.NewResolver(cfg.AssetsDir, cfg.FetchTimeout)
	templates := template.NewRegistry()
	assets := render.LoadAssets(ctx, resolver, templates)

	// Load institutions at startup (best-effort)
	orgs, err := institution.LoadFromDataDir(cfg.DataDir)
	if err != nil {
		log.Warn("failed to load institution catalog, using fallback", zap.String("dir", cfg.DataDir), zap.Error(err))
	}
	log.Info("institution catalog loaded", zap.Int("countries", len(orgs.Countries())))

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(api.NewHandler(render.New(templates, orgs, resolver, assets, fonts)))

	log.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("assets", cfg.AssetsDir))
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}

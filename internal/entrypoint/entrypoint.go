package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/config"
	"github.com/accentlab/lexicon/internal/database"
	"github.com/accentlab/lexicon/internal/database/entries"
	"github.com/accentlab/lexicon/internal/database/lexicalsets"
	"github.com/accentlab/lexicon/internal/database/phonemes"
	http_controllers "github.com/accentlab/lexicon/internal/http"
	"github.com/accentlab/lexicon/internal/ortho"
	"github.com/accentlab/lexicon/internal/scheduler"
	"github.com/accentlab/lexicon/internal/tasks"
	"github.com/accentlab/lexicon/internal/wiktionary"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Lexicon v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	entryRepo := entries.NewRepository(db.DB)
	lexicalSetRepo := lexicalsets.NewRepository(db.DB)
	phonemeRepo := phonemes.NewRepository(db.DB)

	// Load the pronunciation index. Missing data files only disable the
	// ortho endpoints.
	var orthoIndex *ortho.Index
	index, err := ortho.LoadIndex(cfg.Ortho.CMUDictPath, cfg.Ortho.FrequencyPath)
	if err != nil {
		log.Printf("WARNING: Pronunciation index unavailable (%v); /ortho endpoints disabled", err)
	} else {
		orthoIndex = index
		log.Printf("Pronunciation index loaded: %d headwords", orthoIndex.Size())
	}

	wiktionaryClient := wiktionary.NewAPIClient(cfg.Wiktionary.BaseURL)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewEnrichEntryAudioQueue(entryRepo, wiktionaryClient),
			tasks.NewEnrichAllAudioQueue(entryRepo, taskClient),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic audio sweep rides on the task queue.
	var audioSync *scheduler.AudioSyncScheduler
	if cfg.AudioSync.Enabled && taskClient != nil {
		audioSync = scheduler.NewAudioSyncScheduler(taskClient, cfg.AudioSync.Schedule)
		if err := audioSync.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start audio sync scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:         db,
		EntryStore:       entryRepo,
		LexicalSetStore:  lexicalSetRepo,
		PhonemeStore:     phonemeRepo,
		WiktionaryClient: wiktionaryClient,
		TaskClient:       taskClient,
		Version:          version,
	}
	if orthoIndex != nil {
		routerCfg.OrthoIndex = orthoIndex
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if audioSync != nil {
			audioSync.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

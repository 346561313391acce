package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/coordinator/internal/config"
	http_collab "github.com/humanbelnik/coordinator/internal/delivery/http/collab"
	http_init "github.com/humanbelnik/coordinator/internal/delivery/http/init"
	http_middleware "github.com/humanbelnik/coordinator/internal/delivery/http/middleware"
	http_room "github.com/humanbelnik/coordinator/internal/delivery/http/room"
	http_scene "github.com/humanbelnik/coordinator/internal/delivery/http/scene"
	http_static "github.com/humanbelnik/coordinator/internal/delivery/http/static"
	http_swagger "github.com/humanbelnik/coordinator/internal/delivery/http/swagger"
	ws_room "github.com/humanbelnik/coordinator/internal/delivery/ws/room"
	infra_modelfs "github.com/humanbelnik/coordinator/internal/infra/modelfs"
	infra_ollama "github.com/humanbelnik/coordinator/internal/infra/ollama"
	infra_redis_catalog "github.com/humanbelnik/coordinator/internal/infra/redis/catalog"
	infra_redis_init "github.com/humanbelnik/coordinator/internal/infra/redis/init"
	infra_speech "github.com/humanbelnik/coordinator/internal/infra/speech"
	"github.com/humanbelnik/coordinator/internal/service/room_code"
	"github.com/humanbelnik/coordinator/internal/service/scene_merger"
	storage_room "github.com/humanbelnik/coordinator/internal/storage/room"
	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
	usecase_room "github.com/humanbelnik/coordinator/internal/usecase/room"
	usecase_scene "github.com/humanbelnik/coordinator/internal/usecase/scene"
)

const catalogKey = "catalog:ollama:tags"

func Go(cfg *config.Config) {
	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	codes := room_code.MustNew(room_code.WithAttempts(cfg.Room.CodeAttempts))
	roomStore := storage_room.New(codes)

	hub := ws_room.NewHub(ws_room.WithLogger(logger))
	go hub.Run()

	roomUC := usecase_room.New(roomStore,
		usecase_room.WithNotifier(hub),
		usecase_room.WithLogger(logger))

	ollama := infra_ollama.New(cfg.Ollama.URL, infra_ollama.WithLogger(logger))
	sceneUC := usecase_scene.New(roomStore, scene_merger.New(), usecase_scene.Generator{
		URL:   ollama.URL(),
		Model: cfg.Ollama.Model,
	}, usecase_scene.WithLogger(logger))

	collabOpts := []usecase_collab.Option{usecase_collab.WithLogger(logger)}
	shutdownOps := map[string]gfshutdown.Operation{}

	if cfg.Redis.Enabled() {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		collabOpts = append(collabOpts, usecase_collab.WithTagCache(
			infra_redis_catalog.New(redisConn, catalogKey, cfg.Redis.CatalogTTL)))
		shutdownOps["redis"] = func(context.Context) error {
			return redisConn.Close()
		}
	}

	collabUC := usecase_collab.New(
		ollama,
		infra_speech.NewTTS(cfg.TTS.URL, cfg.TTS.Model, infra_speech.WithLogger(logger)),
		infra_speech.NewSTT(cfg.STT.URL, infra_speech.WithLogger(logger)),
		infra_modelfs.New(cfg.Ollama.ModelsDir, cfg.Ollama.HostDir),
		cfg.Ollama.Model,
		collabOpts...,
	)

	controllerPool := http_init.NewControllerPool(
		http_init.WithLogger(logger),
		http_init.WithMiddleware(
			http_middleware.RequestID(),
			http_middleware.Logger(logger),
			http_middleware.CORS(cfg.HTTP.CORSOrigins),
		),
	)
	controllerPool.Add(http_room.New(roomUC, http_room.WithLogger(logger)))
	controllerPool.Add(http_scene.New(sceneUC, http_scene.WithLogger(logger)))
	controllerPool.Add(http_collab.New(collabUC, roomStore, http_collab.WithLogger(logger)))
	controllerPool.Add(ws_room.NewController(hub, roomUC, ws_room.WithControllerLogger(logger)))
	controllerPool.Add(http_swagger.New())
	controllerPool.Register()

	if site := http_static.New(cfg.HTTP.StaticDir); site != nil {
		logger.Info("serving static client", slog.String("dir", cfg.HTTP.StaticDir))
		controllerPool.Fallback(site.Handler())
	} else {
		controllerPool.Fallback(http_static.NotFound())
	}

	shutdownOps["http"] = controllerPool.Shutdown
	shutdownOps["lobby"] = hub.Stop

	go func() {
		if err := controllerPool.RunAll(cfg.HTTP.Host, cfg.HTTP.Port); err != nil {
			log.Fatalf("failed to run HTTP server: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.HTTP.ShutdownTimeout, shutdownOps)
	exitCode := <-wait
	logger.Info("shutdown complete", slog.Int("exit_code", exitCode))
	os.Exit(exitCode)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

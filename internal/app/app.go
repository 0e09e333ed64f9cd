package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"momentos/internal/assets"
	"momentos/internal/config"
	"momentos/internal/gallery"
	"momentos/internal/handlers"
	"momentos/internal/metrics"
	"momentos/internal/models"
	"momentos/internal/moments"
	"momentos/internal/shell"
	"momentos/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server bundles the HTTP app with the in-memory state it serves.
type Server struct {
	App     *fiber.App
	Gallery *gallery.Store
	Moments *moments.Store
	Shell   *shell.Shell
	Hub     *handlers.Hub
}

// New loads the gallery from assetsFS once and wires routes and change notifications.
func New(cfg config.Config, assetsFS fs.FS) (*Server, error) {
	photos, err := gallery.New(func() ([]models.Photo, error) {
		return assets.Load(assetsFS, cfg.PhotosDir)
	})
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}
	metrics.GalleryPhotos.Set(float64(photos.Len()))

	s := &Server{
		Gallery: photos,
		Moments: moments.NewStore(),
		Shell:   shell.New(),
		Hub:     handlers.NewHub(cfg.WSWriteTimeout),
	}

	// Every change is pushed to the open pages
	s.Gallery.Subscribe(func(p []models.Photo) {
		metrics.ObserveGallery(len(p))
		s.Hub.Broadcast(models.WSMessage{Event: "photos", Photos: p})
	})
	s.Moments.Subscribe(func(m []models.Moment) {
		metrics.ObserveMoments(len(m))
		s.Hub.Broadcast(models.WSMessage{Event: "moments", Moments: m})
	})
	s.Shell.OnChange(func(t shell.Tab) {
		s.Hub.Broadcast(models.WSMessage{Event: "tab", Tab: string(t)})
	})

	app := fiber.New(fiber.Config{AppName: "momentos"})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.CORSOrigins, ",")}))

	// Routes
	api := app.Group("/api")

	api.Get("/photos", handlers.ListPhotosHandler(s.Gallery))
	api.Post("/photos", handlers.AddPhotoHandler(s.Gallery))
	api.Post("/photos/reload", handlers.ReloadPhotosHandler(s.Gallery))
	api.Delete("/photos/:photo_id", handlers.DeletePhotoHandler(s.Gallery))

	api.Get("/moments", handlers.ListMomentsHandler(s.Moments))
	api.Post("/moments", handlers.AddMomentHandler(s.Moments))
	api.Delete("/moments/:moment_id", handlers.DeleteMomentHandler(s.Moments))

	api.Get("/tab", handlers.GetTabHandler(s.Shell))
	api.Put("/tab", handlers.SelectTabHandler(s.Shell))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// WebSocket Route
	app.Use("/ws", handlers.WSUpgradeMiddleware)
	app.Get("/ws", handlers.SubscribeHandler(s.Hub, func() interface{} { return s.Snapshot() }))

	// Page shell and bundled photos
	root := http.FS(assetsFS)
	app.Get("/", func(c *fiber.Ctx) error {
		return filesystem.SendFile(c, root, "index.html")
	})
	app.Use("/"+cfg.PhotosDir, filesystem.New(filesystem.Config{
		Root:       root,
		PathPrefix: cfg.PhotosDir,
		MaxAge:     3600,
	}))

	s.App = app
	return s, nil
}

// Snapshot is the full state a page needs to render from scratch.
func (s *Server) Snapshot() models.WSMessage {
	return models.WSMessage{
		Event:   "snapshot",
		Photos:  s.Gallery.List(),
		Moments: s.Moments.List(),
		Tab:     string(s.Shell.Current()),
	}
}

func Run() {
	cfg := config.Load()
	log.SetLevel(cfg.Level())

	var assetsFS fs.FS = web.FS
	if cfg.AssetsDir != "" {
		assetsFS = os.DirFS(cfg.AssetsDir)
		log.Infow("serving assets from disk", "dir", cfg.AssetsDir)
	}

	srv, err := New(cfg, assetsFS)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	log.Infow("gallery loaded", "photos", srv.Gallery.Len(), "dir", cfg.PhotosDir)

	// Start Server
	go func() {
		if err := srv.App.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Info("Gracefully shutting down...")
	_ = srv.App.Shutdown()
	log.Info("Server shutdown complete")
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/app/services"
	"github.com/inkwell-cms/InkWell/internal/pkg/cache"
	"github.com/inkwell-cms/InkWell/internal/pkg/database"
	"github.com/inkwell-cms/InkWell/internal/pkg/env"
	"github.com/inkwell-cms/InkWell/internal/pkg/logger"
	"github.com/inkwell-cms/InkWell/internal/pkg/router"
	"github.com/inkwell-cms/InkWell/internal/pkg/storage"
	"github.com/inkwell-cms/InkWell/internal/pkg/utils"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	logger.Setup()
	database.SetupDatabase()
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/inkwell to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// wire repositories, file storage and services
	repository.InitializeFactory(database.GetDB())
	store, err := storage.NewLocalStorage(basePath + "uploads")
	if err != nil {
		panic(fmt.Sprintf("storage setup failed: %s", err))
	}
	services.InitializeServices(repository.GetGlobalRepositories(), store)

	// init fiber app
	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("formatContent", utils.FormatArticleContent)
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		BodyLimit:   20 * 1024 * 1024,
	})

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static uploads
	app.Static("/uploads", basePath+"uploads", fiber.Static{
		CacheDuration: 10 * time.Second,
		Compress:      false,
		MaxAge:        604800, // 7 days
	})

	// ROUTER
	router.InstallRouter(app)

	return app
}

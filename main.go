package main

import (
	"coursepanel/config"
	"coursepanel/database"
	authRoutes "coursepanel/routers/authRoutes"
	contentRoutes "coursepanel/routers/contentRoutes"
	pageRoutes "coursepanel/routers/pageRoutes"
	publishRoutes "coursepanel/routers/publishRoutes"
	"coursepanel/session"
	"coursepanel/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	store := database.NewContentStore(db)
	sess := session.New(store)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the published site
	app.Static("/", config.AppConfig.OutputDir)

	// The admin API hides behind a non-obvious path prefix
	admin := app.Group(config.AppConfig.AdminPanelPath)
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "Admin panel API"})
	})
	authRoutes.SetupAuthRoutes(admin)
	contentRoutes.SetupContentRoutes(admin, sess)
	pageRoutes.SetupPageRoutes(admin, sess)
	publishRoutes.SetupPublishRoutes(admin, sess)

	// Unknown paths land on the panel
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(config.AppConfig.AdminPanelPath, fiber.StatusFound)
	})

	utils.InitializePublishScheduler(sess)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

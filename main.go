package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shelter/internal/handlers"
	"shelter/internal/middleware"
	"shelter/internal/models"
	"shelter/internal/repositories"
	"shelter/internal/services"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "shelter.db")
	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("DB_RESET", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	secretKey := viper.GetString("SECRET_KEY")
	if secretKey == "" {
		// Dev fallback: sessions won't survive a restart.
		secretKey = encryptcookie.GenerateKey()
	}

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Dropping the schema is opt-in only; a normal start just migrates.
	if viper.GetBool("DB_RESET") {
		log.Println("DB_RESET set: dropping and recreating the schema")
		if err := resetDatabase(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		seedDatabase(db)
	} else if err := db.AutoMigrate(allModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- HTTP Server ---
	app := NewApp(db, secretKey, "./views")

	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp assembles the Fiber application: template engine, middleware,
// session store and one handler per resource.
func NewApp(db *gorm.DB, secretKey, viewsDir string) *fiber.App {
	engine := html.New(viewsDir, ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(encryptcookie.New(encryptcookie.Config{Key: secretKey}))

	store := session.New()

	// Repositories
	petRepo := repositories.NewGORMPetRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)

	// Services
	petService := services.NewPetService(petRepo)
	userService := services.NewUserService(userRepo, postRepo)
	tagService := services.NewTagService(tagRepo)
	postService := services.NewPostService(postRepo, userRepo, tagRepo)

	// Handlers
	handlers.NewPetHandler(petService, store).RegisterRoutes(app)
	handlers.NewUserHandler(userService, store).RegisterRoutes(app)
	handlers.NewPostHandler(postService, userService, tagService, store).RegisterRoutes(app)
	handlers.NewTagHandler(tagService, store).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// openDatabase picks the GORM driver from the connection string:
// postgres URLs and DSNs use the postgres driver, anything else is
// treated as a sqlite path.
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func allModels() []any {
	return []any{&models.Pet{}, &models.User{}, &models.Post{}, &models.Tag{}}
}

// resetDatabase drops every table, join table included, and recreates
// the schema from the models. All prior data is lost.
func resetDatabase(db *gorm.DB) error {
	if err := db.Migrator().DropTable("post_tags"); err != nil {
		return err
	}
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		return err
	}
	return db.AutoMigrate(allModels()...)
}

// seedDatabase populates a freshly reset schema with demo records.
func seedDatabase(db *gorm.DB) {
	petRepo := repositories.NewGORMPetRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)

	age := 3
	pets := []models.Pet{
		{Name: "Rex", Species: "dog", Age: &age, PhotoURL: models.DefaultPetPhotoURL, Available: true},
		{Name: "Whiskers", Species: "cat", PhotoURL: models.DefaultPetPhotoURL, Available: true},
		{Name: "Spike", Species: "porcupine", Notes: "Handle with care", PhotoURL: models.DefaultPetPhotoURL, Available: true},
	}
	for i := range pets {
		if err := petRepo.Create(&pets[i]); err != nil {
			log.Printf("Error seeding pet %s: %v", pets[i].Name, err)
		}
	}

	if err := userRepo.Create(&models.User{FirstName: "Jane", LastName: "Doe"}); err != nil {
		log.Printf("Error seeding user: %v", err)
	}

	for _, name := range []string{"friendly", "urgent"} {
		if err := tagRepo.Create(&models.Tag{Name: name}); err != nil {
			log.Printf("Error seeding tag %s: %v", name, err)
		}
	}
}

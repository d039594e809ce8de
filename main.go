package main

import (
	"eduapi/config"
	"eduapi/database"
	answerRoutes "eduapi/routers/answerRoutes"
	authRoutes "eduapi/routers/authRoutes"
	discussionRoutes "eduapi/routers/discussionRoutes"
	lessonRoutes "eduapi/routers/lessonRoutes"
	subjectRoutes "eduapi/routers/subjectRoutes"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",             // Allowed HTTP methods
		AllowHeaders: "Content-Type,x-auth-token",       // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	subjectRoutes.SetupSubjectRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	discussionRoutes.SetupDiscussionRoutes(app)
	answerRoutes.SetupAnswerRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

package main

import (
	"log"
	"os"

	"rotuprint_back_end/internal/config"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur RotuPrint lancé sur le port", port)
	r.Run(":" + port)
}

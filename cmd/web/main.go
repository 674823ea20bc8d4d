package main

import (
	"log"
	"net/http"

	"github.com/jei-ifri/showdown/internal/config"
	"github.com/jei-ifri/showdown/internal/db"
	"github.com/jei-ifri/showdown/internal/ws"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	database := db.InitDB(cfg.DatabasePath)
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	router := newRouter(cfg, database, hub)

	log.Println("Server starting on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}

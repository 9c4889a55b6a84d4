package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv" // Para cargar variables de entorno desde .env
	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/repository"
	"github.com/kelydev/semilleros/ui"
)

func main() {
	fmt.Println("Bienvenido al Sistema de Gestión de Grupos y Semilleros de Investigación - Universidad EAN")

	// Cargar variables de entorno desde .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Initialize database connection
	store, err := database.InitDB()
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer store.Close()

	// Cargar datos iniciales de grupos
	cargados, err := repository.SeedGrupos(store)
	if err != nil {
		log.Fatal("Failed to load seed data:", err)
	}
	if cargados > 0 {
		fmt.Printf("Se han cargado %d grupos de investigación.\n", cargados)
	} else {
		fmt.Println("Los datos de grupos ya están cargados en la base de datos.")
	}

	// Iniciar la interfaz de usuario
	ui.NewMenu(store).Run()
}

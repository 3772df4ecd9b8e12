package main

import (
	"log"

	"jobboard_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

package main

import (
	"log"

	"requisiciones/internal/api"
)

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}

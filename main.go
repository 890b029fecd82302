package main

import (
	"fmt"
	"log"

	"cpu-scheduling-simulator/api"
	"cpu-scheduling-simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	app := api.NewApp(cfg)

	log.Printf("scheduling simulator listening on port %d", cfg.Port)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

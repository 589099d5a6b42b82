package main

import (
	"forest/config"
	"forest/di"
	"forest/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeWorker()
	worker.Serve()
}

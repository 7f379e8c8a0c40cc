package main

import (
	"Tripweave/internal/repository"
	"Tripweave/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}

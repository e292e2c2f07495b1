package main

import (
	"github.com/pbf-league/huddle/internal/app/console"
	"github.com/pbf-league/huddle/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Console server exited: ", zap.Error(
		console.NewServer().Start(),
	))
}

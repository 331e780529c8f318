package main

import (
	"github.com/setforge/setforge/cmd"
	"github.com/setforge/setforge/internal/logging"
	"github.com/setforge/setforge/internal/status"
)

func main() {
	defer logging.RecoverPanic("main", func() {
		status.Error("Application terminated due to unhandled panic")
	})

	cmd.Execute()
}

package main

import (
	"clinical-platform/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewAuthApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}

	app.Run()
}

package main

import (
	"clinical-platform/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewUsersApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize users service: %v", err)
	}

	app.Run()
}

package main

import (
	"clinical-platform/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewAppointmentsApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize appointments service: %v", err)
	}

	app.Run()
}

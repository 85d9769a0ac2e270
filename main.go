package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"sharthi/app"
)

func main() {
	if err := app.New().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rocketscienceinc/pente-backend/internal/pentectl/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := cmd.Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

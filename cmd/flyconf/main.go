package main

import (
	"os"

	"github.com/MKhiriev/flyconf/internal/cli"
	"github.com/MKhiriev/flyconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.NewRootCommand(info, os.Environ()).Execute(); err != nil {
		os.Exit(1)
	}
}

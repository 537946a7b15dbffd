package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/get-webpack-config/internal/cli"
	"github.com/MKhiriev/get-webpack-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, models.NewBuildInfo(buildVersion, buildDate, buildCommit)); err != nil {
		cancel()
		os.Exit(1)
	}
}

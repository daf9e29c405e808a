package main

import (
	"fmt"
	"os"

	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driven/archive"
	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driven/chart"
	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driven/ingest"
	"github.com/diillson/campus-energy-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/campus-energy-dashboard-go/internal/application/usecase"
	"github.com/diillson/campus-energy-dashboard-go/pkg/console"
	"github.com/diillson/campus-energy-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	consoleImpl := console.NewConsole()
	readingRepo := ingest.NewReadingRepository(consoleImpl)
	exportRepo := export.NewExportRepository()
	chartRepo := chart.NewChartRepository()
	configRepo := config.NewConfigRepository()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		readingRepo,
		exportRepo,
		chartRepo,
		configRepo,
		archive.New,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

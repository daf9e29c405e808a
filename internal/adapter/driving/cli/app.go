package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/campus-energy-dashboard-go/internal/application/usecase"
	"github.com/diillson/campus-energy-dashboard-go/internal/shared/types"
	"github.com/diillson/campus-energy-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "campus-energy",
		Short:   "Campus Energy Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Campus Energy Dashboard version: %s\n" .Version}}`)

	// Flags de linha de comando; nenhuma é obrigatória.
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-dir", "i", "", "Directory containing the input CSV files (default: ./data)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the output artifacts (default: current directory)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the optional report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Additional report types: csv, json, pdf")
	rootCmd.PersistentFlags().String("db", "", "Path to a SQLite database to archive the cleaned readings")
	rootCmd.PersistentFlags().Bool("trend", false, "Display daily campus consumption as trend bars")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	dataDir, _ := app.rootCmd.Flags().GetString("data-dir")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dbPath, _ := app.rootCmd.Flags().GetString("db")
	trend, _ := app.rootCmd.Flags().GetBool("trend")

	// Diretório de saída: relativo vira absoluto, vazio fica para o usecase
	// resolver depois do merge com o arquivo de configuração.
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	} else if configFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		DataDir:    dataDir,
		Dir:        dir,
		ReportName: reportName,
		ReportType: reportType,
		DBPath:     dbPath,
		Trend:      trend,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

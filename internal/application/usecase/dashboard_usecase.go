package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/repository"
	"github.com/diillson/campus-energy-dashboard-go/internal/shared/types"
)

// DefaultDataDir é o diretório de entrada usado quando nenhum é configurado.
const DefaultDataDir = "data"

// DefaultReportName é o nome-base dos relatórios opcionais (JSON/PDF).
const DefaultReportName = "energy_report"

// ArchiveFactory abre o repositório de arquivo histórico sob demanda.
// Injetada para que o banco só seja criado quando --db for usado.
type ArchiveFactory func(dbPath string) (repository.ArchiveRepository, error)

// DashboardUseCase handles the main dashboard pipeline:
// ingestion -> aggregation -> reporting.
type DashboardUseCase struct {
	readingRepo    repository.ReadingRepository
	exportRepo     repository.ExportRepository
	chartRepo      repository.ChartRepository
	configRepo     repository.ConfigRepository
	archiveFactory ArchiveFactory
	console        types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	readingRepo repository.ReadingRepository,
	exportRepo repository.ExportRepository,
	chartRepo repository.ChartRepository,
	configRepo repository.ConfigRepository,
	archiveFactory ArchiveFactory,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		readingRepo:    readingRepo,
		exportRepo:     exportRepo,
		chartRepo:      chartRepo,
		configRepo:     configRepo,
		archiveFactory: archiveFactory,
		console:        console,
	}
}

// ResolveArgs mescla o arquivo de configuração (quando informado) com os
// argumentos da CLI e aplica os padrões. Flags explícitas têm precedência
// sobre o arquivo.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		if args.DataDir == "" {
			args.DataDir = cfg.DataDir
		}
		if args.Dir == "" {
			args.Dir = cfg.Dir
		}
		if args.ReportName == "" {
			args.ReportName = cfg.ReportName
		}
		if len(args.ReportType) == 0 {
			args.ReportType = cfg.ReportType
		}
		if args.DBPath == "" {
			args.DBPath = cfg.DBPath
		}
		if cfg.Trend {
			args.Trend = true
		}
	}

	if args.DataDir == "" {
		args.DataDir = DefaultDataDir
	}
	if args.ReportName == "" {
		args.ReportName = DefaultReportName
	}
	return nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}

	// Ingestão: erro aqui é fatal e nenhum artefato é escrito.
	status := uc.console.Status(fmt.Sprintf("Ingesting CSV files from %s...", args.DataDir))
	readings, stats, err := uc.readingRepo.LoadReadings(args.DataDir)
	status.Stop()
	if err != nil {
		return err
	}

	if len(readings) == 0 {
		uc.console.LogWarning("No valid readings ingested; artifacts will be empty.")
	} else {
		uc.console.LogSuccess("Ingested %d readings from %d files (%d rows dropped)",
			stats.RowsKept, stats.FilesRead, stats.RowsDropped)
	}

	report := BuildReport(readings, stats)

	uc.displaySummary(report)

	if args.Trend {
		uc.console.DisplayTrendBars(campusDailyPoints(report.DailyTotals))
	}

	// Artefatos principais: cleaned CSV, summary CSV, summary.txt, dashboard.png.
	if _, err := uc.exportRepo.ExportCleanedCSV(readings, args.Dir); err != nil {
		return fmt.Errorf("exporting cleaned data: %w", err)
	}
	if _, err := uc.exportRepo.ExportSummaryCSV(report, args.Dir); err != nil {
		return fmt.Errorf("exporting building summary: %w", err)
	}
	txtPath, err := uc.exportRepo.ExportSummaryText(report, args.Dir)
	if err != nil {
		return fmt.Errorf("exporting summary text: %w", err)
	}
	pngPath, err := uc.chartRepo.RenderDashboard(report, readings, args.Dir)
	if err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}
	uc.console.LogSuccess("Wrote summary to %s and dashboard to %s", txtPath, pngPath)

	// Relatórios opcionais seguem o mesmo contrato dos exports do dashboard:
	// falha é registrada, a execução continua.
	for _, reportType := range args.ReportType {
		switch reportType {
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export report to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to PDF: %s", pdfPath)
			}
		case "csv", "":
			// Os CSVs principais já foram escritos acima.
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}

	if args.DBPath != "" {
		if err := uc.archiveReadings(args.DBPath, readings); err != nil {
			uc.console.LogError("Failed to archive readings: %s", err)
		}
	}

	return nil
}

// displaySummary imprime a tabela-resumo e o resumo executivo no console.
func (uc *DashboardUseCase) displaySummary(report *entity.CampusReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Building")
	table.AddColumn("Total kWh")
	table.AddColumn("Avg kWh")
	table.AddColumn("Min kWh")
	table.AddColumn("Max kWh")
	table.AddColumn("Readings")

	for _, s := range report.Summaries {
		avg := fmt.Sprintf("%.2f", s.AvgKWh)
		if s.Readings == 0 {
			avg = "N/A"
		}
		table.AddRow(
			s.Building,
			fmt.Sprintf("%.2f", s.TotalKWh),
			avg,
			fmt.Sprintf("%.2f", s.MinKWh),
			fmt.Sprintf("%.2f", s.MaxKWh),
			s.Readings,
		)
	}
	uc.console.Println(table.Render())

	uc.console.Println("Executive Summary")
	uc.console.Printf("- Total campus consumption: %.2f kWh\n", report.CampusTotalKWh)
	if report.TopBuilding != "" {
		uc.console.Printf("- Highest-consuming building: %s (%.2f kWh)\n", report.TopBuilding, report.TopBuildingKWh)
	}
	if report.PeakReading != nil {
		uc.console.Printf("- Peak load time: %s at %s (%.2f kWh)\n",
			report.PeakReading.Timestamp.Format("2006-01-02 15:04:05"),
			report.PeakReading.Building,
			report.PeakReading.KWh,
		)
	}
	uc.console.Printf("- Main trend: %s\n", report.Trend)
}

// archiveReadings grava as leituras limpas no banco histórico.
func (uc *DashboardUseCase) archiveReadings(dbPath string, readings []entity.Reading) error {
	archiveRepo, err := uc.archiveFactory(dbPath)
	if err != nil {
		return err
	}
	defer archiveRepo.Close()

	inserted, err := archiveRepo.InsertReadings(readings)
	if err != nil {
		return err
	}
	total, err := archiveRepo.CountReadings()
	if err != nil {
		return err
	}
	uc.console.LogInfo("Archived %d new readings to %s (%d total)", inserted, dbPath, total)
	return nil
}

// campusDailyPoints soma os totais diários de todos os prédios por dia,
// na ordem cronológica, para o gráfico de tendência do console.
func campusDailyPoints(daily []entity.DailyTotal) []types.DailyPoint {
	var points []types.DailyPoint
	index := make(map[string]int)
	for _, d := range daily {
		day := d.Day.Format("2006-01-02")
		if i, ok := index[day]; ok {
			points[i].KWh += d.KWh
			continue
		}
		index[day] = len(points)
		points = append(points, types.DailyPoint{Day: day, KWh: d.KWh})
	}
	return points
}

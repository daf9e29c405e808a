package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// Nomes fixos dos artefatos principais. São sobrescritos a cada execução
// e byte-idênticos para entradas idênticas.
const (
	CleanedCSVName = "cleaned_energy_data.csv"
	SummaryCSVName = "building_summary.csv"
	SummaryTxtName = "summary.txt"
)

const timestampLayout = "2006-01-02 15:04:05"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportCleanedCSV escreve a tabela combinada e validada de leituras.
func (r *ExportRepositoryImpl) ExportCleanedCSV(readings []entity.Reading, outputDir string) (string, error) {
	outputFilename, err := artifactPath(CleanedCSVName, outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating cleaned CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"timestamp", "building", "kwh"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, reading := range readings {
		record := []string{
			reading.Timestamp.Format(timestampLayout),
			reading.Building,
			strconv.FormatFloat(reading.KWh, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing cleaned CSV: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportSummaryCSV escreve uma linha por prédio, na ordem do ranking.
func (r *ExportRepositoryImpl) ExportSummaryCSV(report *entity.CampusReport, outputDir string) (string, error) {
	outputFilename, err := artifactPath(SummaryCSVName, outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating summary CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"building", "total_kwh", "avg_kwh", "min_kwh", "max_kwh", "readings"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range report.Summaries {
		record := []string{
			s.Building,
			fmt.Sprintf("%.2f", s.TotalKWh),
			fmt.Sprintf("%.2f", s.AvgKWh),
			fmt.Sprintf("%.2f", s.MinKWh),
			fmt.Sprintf("%.2f", s.MaxKWh),
			strconv.Itoa(s.Readings),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing summary CSV: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportSummaryText escreve o resumo executivo em texto livre.
func (r *ExportRepositoryImpl) ExportSummaryText(report *entity.CampusReport, outputDir string) (string, error) {
	outputFilename, err := artifactPath(SummaryTxtName, outputDir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Executive Summary\n")
	b.WriteString(fmt.Sprintf("- Total campus consumption: %.2f kWh\n", report.CampusTotalKWh))
	if report.TopBuilding != "" {
		b.WriteString(fmt.Sprintf("- Highest-consuming building: %s (%.2f kWh)\n", report.TopBuilding, report.TopBuildingKWh))
	} else {
		b.WriteString("- Highest-consuming building: N/A\n")
	}
	if report.PeakReading != nil {
		b.WriteString(fmt.Sprintf("- Peak load time: %s at %s (%.2f kWh)\n",
			report.PeakReading.Timestamp.Format(timestampLayout),
			report.PeakReading.Building,
			report.PeakReading.KWh,
		))
	} else {
		b.WriteString("- Peak load time: N/A\n")
	}
	b.WriteString(fmt.Sprintf("- Main trend: %s\n", report.Trend))
	b.WriteString(fmt.Sprintf("- Rows ingested: %d (%d dropped)\n", report.Stats.RowsKept, report.Stats.RowsDropped))

	if err := os.WriteFile(outputFilename, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("error writing summary text: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON exporta o relatório completo como JSON identado.
func (r *ExportRepositoryImpl) ExportToJSON(report *entity.CampusReport, filename, outputDir string) (string, error) {
	outputFilename, err := artifactPath(filename+".json", outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF exporta o relatório executivo como PDF.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.CampusReport, filename, outputDir string) (string, error) {
	outputFilename, err := artifactPath(filename+".pdf", outputDir)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 102, 204}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Campus Energy Dashboard"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Buildings: %d  |  Readings: %d", len(report.Summaries), report.Stats.RowsKept)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Resumo executivo
	var exec strings.Builder
	exec.WriteString(fmt.Sprintf("Total campus consumption: %.2f kWh\n", report.CampusTotalKWh))
	if report.TopBuilding != "" {
		exec.WriteString(fmt.Sprintf("Highest-consuming building: %s (%.2f kWh)\n", report.TopBuilding, report.TopBuildingKWh))
	}
	if report.PeakReading != nil {
		exec.WriteString(fmt.Sprintf("Peak load time: %s at %s (%.2f kWh)\n",
			report.PeakReading.Timestamp.Format(timestampLayout),
			report.PeakReading.Building,
			report.PeakReading.KWh,
		))
	}
	exec.WriteString(fmt.Sprintf("Main trend: %s", report.Trend))
	drawSection("Executive Summary", exec.String())

	// Resumo por prédio
	var buildings strings.Builder
	for _, s := range report.Summaries {
		buildings.WriteString(fmt.Sprintf("%s: total %.2f kWh, avg %.2f, min %.2f, max %.2f, %d readings\n",
			s.Building, s.TotalKWh, s.AvgKWh, s.MinKWh, s.MaxKWh, s.Readings))
	}
	drawSection("Building Summary", strings.TrimSpace(buildings.String()))

	// Totais semanais
	var weekly strings.Builder
	for _, w := range report.WeeklyTotals {
		weekly.WriteString(fmt.Sprintf("%s | %s: %.2f kWh (avg %.2f over %d readings)\n",
			w.Week, w.Building, w.KWh, w.AvgKWh, w.Readings))
	}
	drawSection("Weekly Totals", strings.TrimSpace(weekly.String()))

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Campus Energy Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// artifactPath garante que o diretório de saída exista e resolve o caminho
// do artefato. Artefatos têm nomes fixos e são sobrescritos a cada execução.
func artifactPath(name, dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, name), nil
}

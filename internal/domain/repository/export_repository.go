package repository

import (
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

// ExportRepository writes the pipeline's output artifacts. The cleaned table
// and the building summary use fixed filenames and must be byte-identical
// across runs on identical input.
type ExportRepository interface {
	ExportCleanedCSV(readings []entity.Reading, outputDir string) (string, error)
	ExportSummaryCSV(report *entity.CampusReport, outputDir string) (string, error)
	ExportSummaryText(report *entity.CampusReport, outputDir string) (string, error)

	ExportToJSON(report *entity.CampusReport, filename, outputDir string) (string, error)
	ExportToPDF(report *entity.CampusReport, filename, outputDir string) (string, error)
}

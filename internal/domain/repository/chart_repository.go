package repository

import (
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

// ChartRepository renders the three-panel dashboard image.
type ChartRepository interface {
	RenderDashboard(report *entity.CampusReport, readings []entity.Reading, outputDir string) (string, error)
}

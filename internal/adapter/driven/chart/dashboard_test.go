package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/campus-energy-dashboard-go/internal/application/usecase"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

func hourlyReadings() []entity.Reading {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var readings []entity.Reading
	for day := 0; day < 5; day++ {
		for hour := 0; hour < 4; hour++ {
			ts := base.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
			readings = append(readings,
				entity.Reading{Timestamp: ts, Building: "Library", KWh: 10 + float64(hour)},
				entity.Reading{Timestamp: ts, Building: "Hostel", KWh: 7 + float64(day)},
			)
		}
	}
	return readings
}

func TestRenderDashboard(t *testing.T) {
	repo := NewChartRepository()

	t.Run("writes a decodable three-panel png", func(t *testing.T) {
		dir := t.TempDir()
		readings := hourlyReadings()
		report := usecase.BuildReport(readings, entity.IngestStats{RowsKept: len(readings)})

		path, err := repo.RenderDashboard(report, readings, dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != DashboardPNGName {
			t.Errorf("unexpected artifact name: %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("dashboard is not a valid PNG: %v", err)
		}
		if img.Bounds().Dx() != panelWidth {
			t.Errorf("expected width %d, got %d", panelWidth, img.Bounds().Dx())
		}
		// Três painéis empilhados.
		if img.Bounds().Dy() != 3*panelHeight {
			t.Errorf("expected height %d, got %d", 3*panelHeight, img.Bounds().Dy())
		}
	})

	t.Run("empty input still writes an image", func(t *testing.T) {
		dir := t.TempDir()
		report := usecase.BuildReport(nil, entity.IngestStats{})

		path, err := repo.RenderDashboard(report, nil, dir)
		if err != nil {
			t.Fatal(err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if _, err := png.Decode(f); err != nil {
			t.Fatalf("placeholder dashboard is not a valid PNG: %v", err)
		}
	})
}

package usecase

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailyTotals(t *testing.T) {
	readings := []entity.Reading{
		{Timestamp: ts("2024-01-01 00:00"), Building: "A", KWh: 10},
		{Timestamp: ts("2024-01-01 23:00"), Building: "A", KWh: 20},
		{Timestamp: ts("2024-01-02 00:00"), Building: "A", KWh: 5},
		{Timestamp: ts("2024-01-01 12:00"), Building: "B", KWh: 7},
	}

	totals := DailyTotals(readings)
	if len(totals) != 3 {
		t.Fatalf("expected 3 daily buckets, got %d", len(totals))
	}

	// Ordered by day, then building.
	if totals[0].Building != "A" || !almostEqual(totals[0].KWh, 30) {
		t.Errorf("expected A=30 on day 1, got %s=%v", totals[0].Building, totals[0].KWh)
	}
	if totals[1].Building != "B" || !almostEqual(totals[1].KWh, 7) {
		t.Errorf("expected B=7 on day 1, got %s=%v", totals[1].Building, totals[1].KWh)
	}
	if !totals[2].Day.Equal(ts("2024-01-02 00:00")) || !almostEqual(totals[2].KWh, 5) {
		t.Errorf("expected A=5 on day 2, got %v=%v", totals[2].Day, totals[2].KWh)
	}
}

func TestDailyTotals_ZoneOffsets(t *testing.T) {
	// Mixed-zone input: the offset reading is 05:00 UTC, the same
	// calendar day as the zoneless one. Both must share one bucket.
	zoned, err := time.Parse(time.RFC3339, "2024-01-01T10:00:00+05:00")
	if err != nil {
		t.Fatal(err)
	}
	readings := []entity.Reading{
		{Timestamp: zoned, Building: "A", KWh: 10},
		{Timestamp: ts("2024-01-01 10:00"), Building: "A", KWh: 20},
	}

	totals := DailyTotals(readings)
	if len(totals) != 1 {
		t.Fatalf("expected 1 daily bucket for mixed-zone readings, got %d: %v", len(totals), totals)
	}
	if !almostEqual(totals[0].KWh, 30) {
		t.Errorf("expected combined total 30, got %v", totals[0].KWh)
	}
	if !totals[0].Day.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected UTC midnight bucket, got %v", totals[0].Day)
	}
}

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"midweek", "2024-01-03 10:00", "2024-W01"},
		{"monday starts the week", "2024-01-08 00:00", "2024-W02"},
		{"sunday belongs to the prior iso week", "2024-01-07 23:00", "2024-W01"},
		{"january 1st can fall in the previous iso year", "2023-01-01 00:00", "2022-W52"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekLabel(ts(tc.in)); got != tc.want {
				t.Errorf("WeekLabel(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}

	t.Run("zone offsets bucket by utc date", func(t *testing.T) {
		// Wall clock says Monday 2024-01-01, but in UTC it is still
		// Sunday 2023-12-31, which belongs to 2023-W52.
		zoned, err := time.Parse(time.RFC3339, "2024-01-01T02:00:00+05:00")
		if err != nil {
			t.Fatal(err)
		}
		if got := WeekLabel(zoned); got != "2023-W52" {
			t.Errorf("WeekLabel(+05:00 offset) = %s, want 2023-W52", got)
		}
	})
}

func TestWeeklyTotals(t *testing.T) {
	readings := []entity.Reading{
		{Timestamp: ts("2024-01-01 00:00"), Building: "A", KWh: 10}, // W01 (Mon)
		{Timestamp: ts("2024-01-07 00:00"), Building: "A", KWh: 20}, // W01 (Sun)
		{Timestamp: ts("2024-01-08 00:00"), Building: "A", KWh: 6},  // W02 (Mon)
	}

	totals := WeeklyTotals(readings)
	if len(totals) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(totals))
	}
	if totals[0].Week != "2024-W01" || !almostEqual(totals[0].KWh, 30) {
		t.Errorf("expected W01 total 30, got %s=%v", totals[0].Week, totals[0].KWh)
	}
	if !almostEqual(totals[0].AvgKWh, 15) || totals[0].Readings != 2 {
		t.Errorf("expected W01 avg 15 over 2 readings, got %v over %d", totals[0].AvgKWh, totals[0].Readings)
	}
	if totals[1].Week != "2024-W02" || !almostEqual(totals[1].KWh, 6) {
		t.Errorf("expected W02 total 6, got %s=%v", totals[1].Week, totals[1].KWh)
	}
}

func TestSummarize(t *testing.T) {
	manager := entity.NewBuildingManager([]entity.Reading{
		{Timestamp: ts("2024-01-01 00:00"), Building: "A", KWh: 10},
		{Timestamp: ts("2024-01-01 01:00"), Building: "A", KWh: 20},
		{Timestamp: ts("2024-01-01 00:00"), Building: "B", KWh: 5},
	})

	summaries := Summarize(manager)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	a := summaries[0]
	if a.Building != "A" {
		t.Fatalf("expected A first in rank order, got %s", a.Building)
	}
	if !almostEqual(a.TotalKWh, 30) || !almostEqual(a.AvgKWh, 15) || a.Readings != 2 {
		t.Errorf("unexpected summary for A: %+v", a)
	}
	if !almostEqual(a.MinKWh, 10) || !almostEqual(a.MaxKWh, 20) {
		t.Errorf("expected min 10 / max 20 for A, got %v / %v", a.MinKWh, a.MaxKWh)
	}

	b := summaries[1]
	if b.Building != "B" || !almostEqual(b.TotalKWh, 5) || !almostEqual(b.AvgKWh, 5) {
		t.Errorf("unexpected summary for B: %+v", b)
	}
}

func TestBuildReport(t *testing.T) {
	t.Run("spec scenario", func(t *testing.T) {
		readings := []entity.Reading{
			{Timestamp: ts("2024-01-01 00:00"), Building: "A", KWh: 10},
			{Timestamp: ts("2024-01-01 00:00"), Building: "B", KWh: 5},
			{Timestamp: ts("2024-01-01 01:00"), Building: "A", KWh: 20},
		}
		report := BuildReport(readings, entity.IngestStats{FilesRead: 2, RowsKept: 3})

		if !almostEqual(report.CampusTotalKWh, 35) {
			t.Errorf("expected campus total 35, got %v", report.CampusTotalKWh)
		}
		if report.TopBuilding != "A" || !almostEqual(report.TopBuildingKWh, 30) {
			t.Errorf("expected top building A (30), got %s (%v)", report.TopBuilding, report.TopBuildingKWh)
		}
		if report.PeakReading == nil || report.PeakReading.Building != "A" || !almostEqual(report.PeakReading.KWh, 20) {
			t.Errorf("unexpected peak reading: %+v", report.PeakReading)
		}
		if len(report.Summaries) != 2 || len(report.DailyTotals) != 2 {
			t.Errorf("unexpected aggregate sizes: %d summaries, %d daily", len(report.Summaries), len(report.DailyTotals))
		}
	})

	t.Run("empty input still yields a report", func(t *testing.T) {
		report := BuildReport(nil, entity.IngestStats{})
		if report.CampusTotalKWh != 0 || report.TopBuilding != "" || report.PeakReading != nil {
			t.Errorf("expected empty report, got %+v", report)
		}
		if report.Trend == "" {
			t.Error("expected a trend statement even for empty input")
		}
	})
}

func TestTrendStatement(t *testing.T) {
	day := func(d string, kwh float64) entity.DailyTotal {
		return entity.DailyTotal{Building: "A", Day: ts(d + " 00:00"), KWh: kwh}
	}

	tests := []struct {
		name  string
		daily []entity.DailyTotal
		want  string
	}{
		{"rising", []entity.DailyTotal{day("2024-01-01", 10), day("2024-01-02", 20)}, "rising"},
		{"falling", []entity.DailyTotal{day("2024-01-01", 20), day("2024-01-02", 10)}, "falling"},
		{"flat", []entity.DailyTotal{day("2024-01-01", 10), day("2024-01-02", 10.2)}, "flat"},
		{"single day", []entity.DailyTotal{day("2024-01-01", 10)}, "Single-day"},
		{"no data", nil, "No data"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := trendStatement(tc.daily)
			if !strings.Contains(got, tc.want) {
				t.Errorf("expected trend containing %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCampusDailyPoints(t *testing.T) {
	daily := []entity.DailyTotal{
		{Building: "A", Day: ts("2024-01-01 00:00"), KWh: 10},
		{Building: "B", Day: ts("2024-01-01 00:00"), KWh: 5},
		{Building: "A", Day: ts("2024-01-02 00:00"), KWh: 7},
	}
	points := campusDailyPoints(daily)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Day != "2024-01-01" || !almostEqual(points[0].KWh, 15) {
		t.Errorf("expected day 1 total 15, got %s=%v", points[0].Day, points[0].KWh)
	}
	if points[1].Day != "2024-01-02" || !almostEqual(points[1].KWh, 7) {
		t.Errorf("expected day 2 total 7, got %s=%v", points[1].Day, points[1].KWh)
	}
}

package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

func sampleReadings() []entity.Reading {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.Reading{
		{Timestamp: base, Building: "A", KWh: 10},
		{Timestamp: base.Add(time.Hour), Building: "A", KWh: 20},
		{Timestamp: base, Building: "B", KWh: 5},
	}
}

func TestArchive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	t.Run("inserts readings", func(t *testing.T) {
		inserted, err := repo.InsertReadings(sampleReadings())
		if err != nil {
			t.Fatal(err)
		}
		if inserted != 3 {
			t.Errorf("expected 3 inserted, got %d", inserted)
		}

		count, err := repo.CountReadings()
		if err != nil {
			t.Fatal(err)
		}
		if count != 3 {
			t.Errorf("expected 3 archived readings, got %d", count)
		}
	})

	t.Run("duplicates are ignored", func(t *testing.T) {
		inserted, err := repo.InsertReadings(sampleReadings())
		if err != nil {
			t.Fatal(err)
		}
		if inserted != 0 {
			t.Errorf("expected 0 inserted on rerun, got %d", inserted)
		}

		count, err := repo.CountReadings()
		if err != nil {
			t.Fatal(err)
		}
		if count != 3 {
			t.Errorf("expected archive to stay at 3 readings, got %d", count)
		}
	})
}

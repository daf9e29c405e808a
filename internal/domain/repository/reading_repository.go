package repository

import (
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

// ReadingRepository carrega o conjunto combinado de leituras a partir do
// diretório de dados. Linhas inválidas são descartadas e contadas; um
// diretório ou arquivo ilegível é um erro fatal.
type ReadingRepository interface {
	LoadReadings(dataDir string) ([]entity.Reading, entity.IngestStats, error)
}

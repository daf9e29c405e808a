package repository

import (
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

// ArchiveRepository persiste as leituras limpas em um banco local para
// acumular histórico entre execuções. Inserções duplicadas (mesmo
// timestamp e prédio) são ignoradas.
type ArchiveRepository interface {
	InsertReadings(readings []entity.Reading) (int, error)
	CountReadings() (int, error)
	Close() error
}

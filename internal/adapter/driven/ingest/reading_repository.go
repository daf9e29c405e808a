package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/repository"
	"github.com/diillson/campus-energy-dashboard-go/internal/shared/types"
)

// Layouts de timestamp aceitos, testados em ordem.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ReadingRepositoryImpl implementa o ReadingRepository sobre arquivos CSV.
type ReadingRepositoryImpl struct {
	console types.ConsoleInterface
}

// NewReadingRepository cria uma nova implementação do ReadingRepository.
func NewReadingRepository(console types.ConsoleInterface) repository.ReadingRepository {
	return &ReadingRepositoryImpl{console: console}
}

// LoadReadings lê todos os arquivos .csv do diretório de dados, valida cada
// linha e concatena tudo em uma tabela única ordenada por timestamp.
// Linhas malformadas ou com kWh negativo são descartadas e contadas;
// um diretório ausente ou arquivo ilegível é erro fatal.
func (r *ReadingRepositoryImpl) LoadReadings(dataDir string) ([]entity.Reading, entity.IngestStats, error) {
	var stats entity.IngestStats

	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stats, fmt.Errorf("%w: %s", types.ErrNoDataDir, dataDir)
		}
		return nil, stats, fmt.Errorf("error accessing data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("%s is not a directory", dataDir)
	}

	files, err := filepath.Glob(filepath.Join(dataDir, "*.csv"))
	if err != nil {
		return nil, stats, fmt.Errorf("error listing data directory: %w", err)
	}
	sort.Strings(files)

	if len(files) == 0 && r.console != nil {
		r.console.LogWarning("No CSV files found in data directory: %s", dataDir)
	}

	var combined []entity.Reading
	for _, file := range files {
		readings, dropped, err := r.loadFile(file)
		if err != nil {
			return nil, stats, err
		}
		stats.FilesRead++
		stats.RowsDropped += dropped
		combined = append(combined, readings...)
		if r.console != nil {
			r.console.LogInfo("Ingested %s with %d rows (%d dropped)", filepath.Base(file), len(readings), dropped)
		}
	}
	stats.RowsKept = len(combined)

	// Ordenação estável: timestamps iguais mantêm a ordem de entrada.
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Timestamp.Before(combined[j].Timestamp)
	})

	return combined, stats, nil
}

// loadFile lê um único CSV. Duas formas de cabeçalho são aceitas:
// "timestamp,kwh" (prédio derivado do nome do arquivo) e
// "Timestamp,Building,kWh" (coluna Building tem precedência).
func (r *ReadingRepositoryImpl) loadFile(path string) ([]entity.Reading, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error opening data file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("error reading header of %s: %w", path, err)
	}

	tsCol, bldCol, kwhCol := headerColumns(header)
	if tsCol < 0 || kwhCol < 0 {
		// Sem cabeçalho reconhecível, o arquivo inteiro é ignorado com aviso.
		if r.console != nil {
			r.console.LogWarning("Missing timestamp/kwh columns in %s; skipping file.", filepath.Base(path))
		}
		return nil, 0, nil
	}

	fallbackName := BuildingNameFromFile(path)

	var readings []entity.Reading
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linha estruturalmente inválida: descartada, a execução continua.
			dropped++
			continue
		}
		if len(record) <= tsCol || len(record) <= kwhCol {
			dropped++
			continue
		}

		ts, ok := parseTimestamp(record[tsCol])
		if !ok {
			dropped++
			continue
		}
		kwh, err := strconv.ParseFloat(strings.TrimSpace(record[kwhCol]), 64)
		if err != nil || kwh < 0 {
			dropped++
			continue
		}

		building := fallbackName
		if bldCol >= 0 && len(record) > bldCol && strings.TrimSpace(record[bldCol]) != "" {
			building = strings.TrimSpace(record[bldCol])
		}

		readings = append(readings, entity.Reading{
			Timestamp: ts,
			Building:  building,
			KWh:       kwh,
		})
	}

	return readings, dropped, nil
}

// headerColumns localiza as colunas de interesse (case-insensitive).
func headerColumns(header []string) (tsCol, bldCol, kwhCol int) {
	tsCol, bldCol, kwhCol = -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "timestamp", "time", "datetime":
			tsCol = i
		case "building":
			bldCol = i
		case "kwh":
			kwhCol = i
		}
	}
	return tsCol, bldCol, kwhCol
}

func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// BuildingNameFromFile deriva o nome de exibição do prédio a partir do nome
// do arquivo: extensão removida, sufixo "_energy" removido, primeira letra
// maiúscula. Ex.: "library_energy.csv" -> "Library".
func BuildingNameFromFile(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, "_energy")
	if name == "" {
		return "Unknown"
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

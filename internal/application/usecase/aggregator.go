package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
)

// Aggregator deriva os totais diários e semanais e a tabela-resumo por
// prédio a partir da tabela combinada. Cada agregação é um único passe
// de group-by-and-sum; períodos sem leituras ficam ausentes (não são
// preenchidos com zero), então as médias cobrem apenas leituras observadas.

// DailyTotals sums kWh per building per UTC calendar day. The result is
// ordered by day ascending, then building name ascending.
func DailyTotals(readings []entity.Reading) []entity.DailyTotal {
	type key struct {
		building string
		day      time.Time
	}
	sums := make(map[key]float64)
	for _, r := range readings {
		// Normaliza para a data UTC: leituras com offset de fuso caem no
		// mesmo balde que leituras sem fuso do mesmo dia.
		y, m, d := r.Timestamp.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		sums[key{r.Building, day}] += r.KWh
	}

	totals := make([]entity.DailyTotal, 0, len(sums))
	for k, kwh := range sums {
		totals = append(totals, entity.DailyTotal{Building: k.building, Day: k.day, KWh: kwh})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Day.Equal(totals[j].Day) {
			return totals[i].Day.Before(totals[j].Day)
		}
		return totals[i].Building < totals[j].Building
	})
	return totals
}

// WeekLabel returns the ISO week bucket of a timestamp, Monday start,
// formatted as "2024-W05". The week is taken from the UTC date, matching
// the daily bucketing convention.
func WeekLabel(ts time.Time) string {
	year, week := ts.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeeklyTotals sums kWh per building per ISO week and carries the
// per-week average over observed readings. Ordered by week ascending,
// then building name ascending.
func WeeklyTotals(readings []entity.Reading) []entity.WeeklyTotal {
	type key struct {
		building string
		week     string
	}
	type acc struct {
		kwh   float64
		count int
	}
	sums := make(map[key]*acc)
	for _, r := range readings {
		k := key{r.Building, WeekLabel(r.Timestamp)}
		a, ok := sums[k]
		if !ok {
			a = &acc{}
			sums[k] = a
		}
		a.kwh += r.KWh
		a.count++
	}

	totals := make([]entity.WeeklyTotal, 0, len(sums))
	for k, a := range sums {
		totals = append(totals, entity.WeeklyTotal{
			Building: k.building,
			Week:     k.week,
			KWh:      a.kwh,
			AvgKWh:   a.kwh / float64(a.count),
			Readings: a.count,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Week != totals[j].Week {
			return totals[i].Week < totals[j].Week
		}
		return totals[i].Building < totals[j].Building
	})
	return totals
}

// Summarize produz uma linha de resumo por prédio, na ordem do ranking
// (total decrescente, empates por nome crescente).
func Summarize(manager *entity.BuildingManager) []entity.BuildingSummary {
	ranked := manager.Rank()
	summaries := make([]entity.BuildingSummary, 0, len(ranked))
	for _, b := range ranked {
		s := entity.BuildingSummary{
			Building: b.Name,
			TotalKWh: b.Total(),
			AvgKWh:   b.Average(),
			Readings: b.Count(),
		}
		for i, r := range b.Readings {
			if i == 0 || r.KWh < s.MinKWh {
				s.MinKWh = r.KWh
			}
			if i == 0 || r.KWh > s.MaxKWh {
				s.MaxKWh = r.KWh
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// BuildReport monta o relatório do campus consumido pelos exportadores.
func BuildReport(readings []entity.Reading, stats entity.IngestStats) *entity.CampusReport {
	manager := entity.NewBuildingManager(readings)

	report := &entity.CampusReport{
		CampusTotalKWh: manager.CampusTotal(),
		Summaries:      Summarize(manager),
		DailyTotals:    DailyTotals(readings),
		WeeklyTotals:   WeeklyTotals(readings),
		Stats:          stats,
	}

	if top := manager.TopBuilding(); top != nil {
		report.TopBuilding = top.Name
		report.TopBuildingKWh = top.Total()
	}
	if peak, ok := manager.Peak(); ok {
		report.PeakReading = &peak
	}
	report.Trend = trendStatement(report.DailyTotals)

	return report
}

// trendStatement compara o total do campus no primeiro e no último dia
// observado e produz uma frase qualitativa de tendência.
func trendStatement(daily []entity.DailyTotal) string {
	if len(daily) == 0 {
		return "No data available for a trend."
	}

	campusByDay := make(map[time.Time]float64)
	var days []time.Time
	for _, d := range daily {
		if _, ok := campusByDay[d.Day]; !ok {
			days = append(days, d.Day)
		}
		campusByDay[d.Day] += d.KWh
	}
	if len(days) < 2 {
		return "Single-day sample; no trend to report."
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	first := campusByDay[days[0]]
	last := campusByDay[days[len(days)-1]]

	switch {
	case first == 0 && last == 0:
		return "Campus consumption is flat across the period."
	case first == 0:
		return "Campus consumption is rising across the period."
	}

	change := (last - first) / first
	switch {
	case change > 0.05:
		return fmt.Sprintf("Campus consumption is rising across the period (%+.1f%% first vs last day).", change*100)
	case change < -0.05:
		return fmt.Sprintf("Campus consumption is falling across the period (%+.1f%% first vs last day).", change*100)
	default:
		return "Campus consumption is roughly flat across the period."
	}
}

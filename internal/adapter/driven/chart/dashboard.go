package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/diillson/campus-energy-dashboard-go/internal/domain/entity"
	"github.com/diillson/campus-energy-dashboard-go/internal/domain/repository"
)

// DashboardPNGName é o nome fixo do artefato visual.
const DashboardPNGName = "dashboard.png"

const (
	panelWidth  = 1200
	panelHeight = 400
)

// ChartRepositoryImpl implementa o ChartRepository usando go-chart.
type ChartRepositoryImpl struct{}

// NewChartRepository cria uma nova implementação do ChartRepository.
func NewChartRepository() repository.ChartRepository {
	return &ChartRepositoryImpl{}
}

// RenderDashboard renderiza os três painéis (linha diária, barras semanais,
// dispersão de pico) e os empilha verticalmente em um único PNG.
// Painéis sem dados suficientes para o go-chart são omitidos; uma execução
// sem nenhuma leitura ainda escreve uma imagem em branco.
func (r *ChartRepositoryImpl) RenderDashboard(report *entity.CampusReport, readings []entity.Reading, outputDir string) (string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		outputDir = cwd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", outputDir, err)
	}
	outputFilename := filepath.Join(outputDir, DashboardPNGName)

	var panels []image.Image

	if img, err := renderDailyTrend(report.DailyTotals); err == nil {
		panels = append(panels, img)
	}
	if img, err := renderWeeklyBars(report.WeeklyTotals); err == nil {
		panels = append(panels, img)
	}
	if img, err := renderPeakScatter(readings); err == nil {
		panels = append(panels, img)
	}

	composite := stackPanels(panels)

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating dashboard file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, composite); err != nil {
		return "", fmt.Errorf("error encoding dashboard PNG: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// renderDailyTrend desenha uma linha por prédio (x = dia, y = kWh).
func renderDailyTrend(daily []entity.DailyTotal) (image.Image, error) {
	byBuilding := make(map[string][]entity.DailyTotal)
	var order []string
	for _, d := range daily {
		if _, ok := byBuilding[d.Building]; !ok {
			order = append(order, d.Building)
		}
		byBuilding[d.Building] = append(byBuilding[d.Building], d)
	}

	var series []gochart.Series
	for _, name := range order {
		points := byBuilding[name]
		// go-chart exige pelo menos dois pontos por série.
		if len(points) < 2 {
			continue
		}
		xs := make([]time.Time, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.Day
			ys[i] = p.KWh
		}
		series = append(series, gochart.TimeSeries{Name: name, XValues: xs, YValues: ys})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("not enough daily data to render a trend line")
	}

	graph := gochart.Chart{
		Title:  "Daily Energy Consumption by Building",
		Width:  panelWidth,
		Height: panelHeight,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Name: "kWh",
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(gochart.PNG, buf)
	})
}

// renderWeeklyBars desenha uma barra por prédio por semana (média semanal).
func renderWeeklyBars(weekly []entity.WeeklyTotal) (image.Image, error) {
	if len(weekly) == 0 {
		return nil, fmt.Errorf("no weekly data to render")
	}

	bars := make([]gochart.Value, 0, len(weekly))
	for _, w := range weekly {
		// "2024-W05" -> "W05" no rótulo, o prédio identifica a barra.
		label := w.Week
		if i := strings.Index(label, "-"); i >= 0 {
			label = label[i+1:]
		}
		bars = append(bars, gochart.Value{
			Label: fmt.Sprintf("%s %s", w.Building, label),
			Value: w.AvgKWh,
		})
	}

	graph := gochart.BarChart{
		Title:    "Average Weekly Usage by Building",
		Width:    panelWidth,
		Height:   panelHeight,
		BarWidth: 40,
		Bars:     bars,
	}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(gochart.PNG, buf)
	})
}

// renderPeakScatter desenha todas as leituras como pontos (x = tempo, y = kWh).
func renderPeakScatter(readings []entity.Reading) (image.Image, error) {
	if len(readings) < 2 {
		return nil, fmt.Errorf("not enough readings to render a scatter plot")
	}

	xs := make([]time.Time, len(readings))
	ys := make([]float64, len(readings))
	for i, r := range readings {
		xs[i] = r.Timestamp
		ys[i] = r.KWh
	}

	graph := gochart.Chart{
		Title:  "Peak Load (all readings)",
		Width:  panelWidth,
		Height: panelHeight,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		YAxis: gochart.YAxis{
			Name: "kWh",
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "readings",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    4,
				},
			},
		},
	}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(gochart.PNG, buf)
	})
}

func renderToImage(render func(*bytes.Buffer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("error decoding rendered panel: %w", err)
	}
	return img, nil
}

// stackPanels empilha os painéis verticalmente sobre fundo branco.
func stackPanels(panels []image.Image) image.Image {
	if len(panels) == 0 {
		blank := image.NewRGBA(image.Rect(0, 0, panelWidth, panelHeight))
		draw.Draw(blank, blank.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		return blank
	}

	width, height := 0, 0
	for _, p := range panels {
		if w := p.Bounds().Dx(); w > width {
			width = w
		}
		height += p.Bounds().Dy()
	}

	composite := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(composite, composite.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := 0
	for _, p := range panels {
		bounds := p.Bounds()
		target := image.Rect(0, y, bounds.Dx(), y+bounds.Dy())
		draw.Draw(composite, target, p, bounds.Min, draw.Over)
		y += bounds.Dy()
	}
	return composite
}

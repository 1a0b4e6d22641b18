// Package layout renders the floor plan of a synthesized circuit as an
// HTML heatmap: advice columns on the x axis, rows on the y axis, assigned
// cells colored by the region they belong to.
package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/consensys/plonkish/backend/mock"
	"github.com/consensys/plonkish/constraint"
)

// Render writes the heatmap for a synthesized prover to w.
func Render(w io.Writer, p *mock.Prover) error {
	regions := p.Regions()

	// region index per absolute row
	regionAt := make([]int, p.NbRows())
	for i := range regionAt {
		regionAt[i] = -1
	}
	for ri, reg := range regions {
		for r := reg.Start; r < reg.Start+reg.Rows; r++ {
			regionAt[r] = ri
		}
	}

	nbAdvice := p.System().NbAdvice
	xLabels := make([]string, nbAdvice)
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("advice%d", i)
	}

	var cells []opts.HeatMapData
	for col := 0; col < nbAdvice; col++ {
		c := constraint.Column{Kind: constraint.ColumnAdvice, Index: col}
		for row := 0; row < p.NbRows(); row++ {
			if !p.IsAssigned(c, row) {
				continue
			}
			name := "outside region"
			if ri := regionAt[row]; ri >= 0 {
				name = regions[ri].Name
			}
			cells = append(cells, opts.HeatMapData{
				Name:  name,
				Value: [3]interface{}{col, row, regionAt[row]},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("circuit layout (k=%d, %d regions)", p.K(), len(regions)),
		}),
		// HeatMap.Validate in go-echarts v2.6.1 does not propagate
		// SetXAxis data into XAxisList, so pass the labels here.
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(regions)),
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("regions", cells)

	return hm.Render(w)
}

// WriteFile renders the heatmap to a file.
func WriteFile(path string, p *mock.Prover) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Render(f, p)
}

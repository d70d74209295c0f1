// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
)

// writeTable prints one row per measurement.
func writeTable(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SHAPE\tN\tPASSES\tALGORITHM\tREPS\tNS/OP\tNS/ELEM\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\t%.0f\t%.2f\t\n",
			r.Shape, r.N, r.Passes, r.Algorithm, r.Reps, r.NsPerOp, r.NsPerElem())
	}
	return tw.Flush()
}

// writeChart renders one line chart per shape, ns/element against input
// size with one series per algorithm.
func writeChart(filename string, results []result, sizes []int, algorithms []string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	xAxis := lo.Map(sizes, func(n int, _ int) string { return strconv.Itoa(n) })
	byShape := lo.GroupBy(results, func(r result) string { return r.Shape })
	for _, name := range lo.Uniq(lo.Map(results, func(r result, _ int) string { return r.Shape })) {
		rows := byShape[name]
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    name,
				Subtitle: fmt.Sprintf("%d passes", rows[0].Passes),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
			charts.WithXAxisOpts(opts.XAxis{Name: "n", Type: "category"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "ns/elem", Type: "log"}),
		)
		line.SetXAxis(xAxis)
		for _, alg := range algorithms {
			series := lo.Map(sizes, func(n int, _ int) opts.LineData {
				r, ok := lo.Find(rows, func(r result) bool { return r.N == n && r.Algorithm == alg })
				if !ok {
					return opts.LineData{Value: nil}
				}
				return opts.LineData{Value: r.NsPerElem()}
			})
			line.AddSeries(alg, series)
		}
		page.AddCharts(line)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

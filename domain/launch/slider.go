package launch

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Default payload slider range in kg
const (
	DefaultSliderMin  = 0
	DefaultSliderMax  = 10000
	DefaultSliderStep = 1000
)

// SliderMark labels a position on the payload slider
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// SliderConfig describes the payload range slider. Value starts at the
// dataset's payload bounds.
type SliderConfig struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Value [2]float64   `json:"value"`
	Marks []SliderMark `json:"marks"`
}

var markQuantiles = []float64{0.25, 0.5, 0.75}

// NewSliderConfig builds the slider for ds over [min, max] with the given step
func NewSliderConfig(ds *Dataset, min, max, step float64) SliderConfig {
	bounds := ds.PayloadBounds()
	return SliderConfig{
		Min:   min,
		Max:   max,
		Step:  step,
		Value: [2]float64{bounds.Min, bounds.Max},
		Marks: PayloadQuartileMarks(ds),
	}
}

// PayloadQuartileMarks places a mark at each payload quartile.
// An empty dataset has no marks.
func PayloadQuartileMarks(ds *Dataset) []SliderMark {
	if ds.Len() == 0 {
		return nil
	}
	payloads := make([]float64, 0, ds.Len())
	for _, r := range ds.records {
		payloads = append(payloads, r.PayloadMassKg)
	}
	sort.Float64s(payloads)

	marks := make([]SliderMark, 0, len(markQuantiles))
	for _, q := range markQuantiles {
		v := stat.Quantile(q, stat.LinInterp, payloads, nil)
		marks = append(marks, SliderMark{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return marks
}

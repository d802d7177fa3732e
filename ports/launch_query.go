package ports

import (
	"launchdash/domain/core"
	"launchdash/domain/launch"
)

// LaunchQueryPort is the read-only query surface the dashboard renders from.
// Implementations never mutate the underlying dataset.
type LaunchQueryPort interface {
	GetSites() []string
	GetSiteOptions() []launch.SiteOption
	GetPayloadBounds() (min, max float64)
	GetSliderConfig() launch.SliderConfig
	GetOutcomeChartData(site string) (launch.ChartSeries, error)
	GetPayloadChartData(site string, rangeMin, rangeMax float64) ([]launch.ScatterPoint, error)
	GetDatasetInfo() DatasetInfo
}

// DatasetInfo summarises the loaded dataset
type DatasetInfo struct {
	ID           core.ID              `json:"id"`
	Source       string               `json:"source"`
	RecordCount  int                  `json:"record_count"`
	SiteCount    int                  `json:"site_count"`
	SuccessCount int                  `json:"success_count"`
	Bounds       launch.PayloadBounds `json:"payload_bounds"`
}

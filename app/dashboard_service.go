package app

import (
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/ports"
)

// SliderSettings configures the payload range slider
type SliderSettings struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultSliderSettings returns the 0-10000 kg slider in 1000 kg steps
func DefaultSliderSettings() SliderSettings {
	return SliderSettings{
		Min:  launch.DefaultSliderMin,
		Max:  launch.DefaultSliderMax,
		Step: launch.DefaultSliderStep,
	}
}

// DashboardService answers dashboard queries over one loaded dataset.
// The site catalog and slider are computed once; chart data is derived per call.
type DashboardService struct {
	dataset *launch.Dataset
	sites   []string
	options []launch.SiteOption
	slider  launch.SliderConfig
	logger  *internal.Logger
}

var _ ports.LaunchQueryPort = (*DashboardService)(nil)

// NewDashboardService creates a dashboard service over ds
func NewDashboardService(ds *launch.Dataset, slider SliderSettings, logger *internal.Logger) *DashboardService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DashboardService{
		dataset: ds,
		sites:   ds.Sites(),
		options: ds.SiteOptions(),
		slider:  launch.NewSliderConfig(ds, slider.Min, slider.Max, slider.Step),
		logger:  logger.With("Dashboard"),
	}
}

// GetSites returns AllSites followed by every distinct launch site
func (s *DashboardService) GetSites() []string {
	return append([]string(nil), s.sites...)
}

// GetSiteOptions returns the dropdown entries for GetSites
func (s *DashboardService) GetSiteOptions() []launch.SiteOption {
	return append([]launch.SiteOption(nil), s.options...)
}

// GetPayloadBounds returns the full dataset's payload range
func (s *DashboardService) GetPayloadBounds() (min, max float64) {
	b := s.dataset.PayloadBounds()
	return b.Min, b.Max
}

// GetSliderConfig returns the payload slider configuration
func (s *DashboardService) GetSliderConfig() launch.SliderConfig {
	cfg := s.slider
	cfg.Marks = append([]launch.SliderMark(nil), s.slider.Marks...)
	return cfg
}

// GetOutcomeChartData returns the pie chart series for site
func (s *DashboardService) GetOutcomeChartData(site string) (launch.ChartSeries, error) {
	series, err := launch.AggregateOutcomes(s.dataset, site)
	if err != nil {
		s.logger.Warn("Outcome chart rejected: %v", err)
		return launch.ChartSeries{}, err
	}
	s.logger.Debug("Outcome chart for %s: %d points", site, len(series.Points))
	return series, nil
}

// GetPayloadChartData returns the scatter points for site within [rangeMin, rangeMax]
func (s *DashboardService) GetPayloadChartData(site string, rangeMin, rangeMax float64) ([]launch.ScatterPoint, error) {
	points, err := launch.FilterByPayloadAndSite(s.dataset, site, rangeMin, rangeMax)
	if err != nil {
		s.logger.Warn("Payload chart rejected: %v", err)
		return nil, err
	}
	s.logger.Debug("Payload chart for %s [%.0f, %.0f]: %d points", site, rangeMin, rangeMax, len(points))
	return points, nil
}

// GetDatasetInfo summarises the loaded dataset
func (s *DashboardService) GetDatasetInfo() ports.DatasetInfo {
	return ports.DatasetInfo{
		ID:           s.dataset.ID(),
		Source:       s.dataset.Source(),
		RecordCount:  s.dataset.Len(),
		SiteCount:    len(s.sites) - 1,
		SuccessCount: s.dataset.SuccessCount(),
		Bounds:       s.dataset.PayloadBounds(),
	}
}

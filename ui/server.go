package ui

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchdash/domain/launch"
	"launchdash/internal"
	apperrors "launchdash/internal/errors"
	"launchdash/ports"
)

// scatterYTicks are the class values shown on the scatter chart's y axis
var scatterYTicks = []int{0, 1}

// Server is the JSON API over the dashboard queries
type Server struct {
	router  *gin.Engine
	queries ports.LaunchQueryPort
	logger  *internal.Logger
}

// NewServer creates the API server. The gin mode is process-wide and is set
// by the caller.
func NewServer(queries ports.LaunchQueryPort, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:  gin.New(),
		queries: queries,
		logger:  logger.With("API"),
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/dataset", s.handleDatasetInfo)
	api.GET("/sites", s.handleSites)
	api.GET("/payload/bounds", s.handlePayloadBounds)
	api.GET("/charts/outcomes", s.handleOutcomeChart)
	api.GET("/charts/payload", s.handlePayloadChart)
}

// Handler exposes the API as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"dataset": s.queries.GetDatasetInfo().ID,
	})
}

func (s *Server) handleDatasetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.queries.GetDatasetInfo())
}

func (s *Server) handleSites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sites":   s.queries.GetSites(),
		"options": s.queries.GetSiteOptions(),
	})
}

func (s *Server) handlePayloadBounds(c *gin.Context) {
	min, max := s.queries.GetPayloadBounds()
	c.JSON(http.StatusOK, gin.H{
		"min":    min,
		"max":    max,
		"slider": s.queries.GetSliderConfig(),
	})
}

func (s *Server) handleOutcomeChart(c *gin.Context) {
	site := c.DefaultQuery("site", launch.AllSites)

	series, err := s.queries.GetOutcomeChartData(site)
	if err != nil {
		s.respondError(c, apperrors.Wrap(err, "outcome chart"))
		return
	}

	c.JSON(http.StatusOK, series)
}

func (s *Server) handlePayloadChart(c *gin.Context) {
	site := c.DefaultQuery("site", launch.AllSites)

	initial := s.queries.GetSliderConfig().Value
	rangeMin, err := floatQuery(c, "min", initial[0])
	if err != nil {
		s.respondError(c, err)
		return
	}
	rangeMax, err := floatQuery(c, "max", initial[1])
	if err != nil {
		s.respondError(c, err)
		return
	}

	points, err := s.queries.GetPayloadChartData(site, rangeMin, rangeMax)
	if err != nil {
		s.respondError(c, apperrors.Wrap(err, "payload chart"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   launch.ScatterChartTitle(site),
		"site":    site,
		"min":     rangeMin,
		"max":     rangeMax,
		"points":  points,
		"count":   len(points),
		"y_ticks": scatterYTicks,
	})
}

// floatQuery parses a finite numeric query parameter, returning def when absent
func floatQuery(c *gin.Context, key string, def float64) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.InvalidInput(key + " must be a number, got " + strconv.Quote(raw))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.InvalidInput(key + " must be finite, got " + strconv.Quote(raw))
	}
	return v, nil
}

func (s *Server) respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения метки outcome
const (
	OutcomeOK       = "ok"
	OutcomeNetwork  = "network_error"
	OutcomeServer   = "server_error"
	OutcomeDatabase = "database_error"
	OutcomeUnknown  = "unknown_error"
	OutcomeBusy     = "in_progress"
)

var SearchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pinalbum_search_requests_total",
	Help: "Total number of photo search requests sent to the provider",
}, []string{"outcome"})

var SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pinalbum_search_duration_seconds",
	Help:    "Histogram for the photo search request duration in seconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5},
})

var AlbumSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pinalbum_album_sync_total",
	Help: "Total number of album synchronizations by outcome",
}, []string{"outcome"})

var AlbumSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pinalbum_album_sync_duration_seconds",
	Help:    "Histogram for the album synchronization duration in seconds",
	Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
})

var ImageResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pinalbum_image_resolve_total",
	Help: "Total number of image resolutions by source (memory, store, network) and outcome",
}, []string{"source", "outcome"})

var ImageDownloadBytes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pinalbum_image_download_bytes_total",
	Help: "Total number of image bytes downloaded from the provider",
})

var ImageDownloadsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "pinalbum_image_downloads_in_flight",
	Help: "Current number of image downloads in progress",
})

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pinalbum_http_requests_total",
	Help: "Total number of HTTP requests by route and status code",
}, []string{"route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pinalbum_http_request_duration_seconds",
	Help:    "Histogram for the HTTP request duration in seconds",
	Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
}, []string{"route"})

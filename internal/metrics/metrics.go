package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GalleryPhotos = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "momentos_gallery_photos",
	Help: "Number of photos currently in the gallery",
})
var MomentsListed = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "momentos_moments",
	Help: "Number of moments currently in the list",
})
var StoreChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "momentos_store_changes_total",
	Help: "Total number of changes applied to the in-memory stores",
}, []string{"store"})
var TabSelectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "momentos_tab_selections_total",
	Help: "Total number of tab switches by destination tab",
}, []string{"tab"})
var RejectedInputTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "momentos_rejected_input_total",
	Help: "Total number of add requests rejected before reaching a store",
}, []string{"kind"})
var SubscribersConnected = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "momentos_ws_subscribers",
	Help: "Currently connected page subscribers",
})

// ObserveGallery records a new gallery size
func ObserveGallery(n int) {
	GalleryPhotos.Set(float64(n))
	StoreChangesTotal.WithLabelValues("gallery").Inc()
}

// ObserveMoments records a new moments list size
func ObserveMoments(n int) {
	MomentsListed.Set(float64(n))
	StoreChangesTotal.WithLabelValues("moments").Inc()
}

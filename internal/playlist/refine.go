package playlist

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// TrackFeatures holds the audio features of one recommended track.
type TrackFeatures struct {
	URI          string
	Energy       float64
	Valence      float64
	Danceability float64
	Acousticness float64
}

// trackObservation wraps a TrackFeatures to implement clusters.Observation.
type trackObservation struct {
	track  *TrackFeatures
	coords clusters.Coordinates
}

func (o trackObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o trackObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

const refineClusters = 2

// Refine filters a recommendation result down to the tracks that best fit
// the selector. The tracks are k-means-clustered on (energy, valence,
// danceability, acousticness) and only the cluster whose centroid lies
// closest to the midpoint of the selector's attribute bounds is kept.
//
// Refinement is best-effort: with too few tracks to cluster, or on a
// clustering failure, the input order is returned unchanged.
func Refine(tracks []TrackFeatures, sel Selector) []string {
	if len(tracks) <= refineClusters {
		return trackURIs(tracks)
	}

	var obs clusters.Observations
	for i := range tracks {
		obs = append(obs, trackObservation{
			track: &tracks[i],
			coords: clusters.Coordinates{
				tracks[i].Energy,
				tracks[i].Valence,
				tracks[i].Danceability,
				tracks[i].Acousticness,
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, refineClusters)
	if err != nil {
		return trackURIs(tracks)
	}

	target := clusters.Coordinates{
		midpoint(sel.Energy),
		midpoint(sel.Valence),
		midpoint(sel.Danceability),
		midpoint(sel.Acousticness),
	}

	best := -1
	bestDist := 0.0
	for i, c := range result {
		d := clusters.Coordinates(c.Center).Distance(target)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	var uris []string
	for _, o := range result[best].Observations {
		if to, ok := o.(trackObservation); ok {
			uris = append(uris, to.track.URI)
		}
	}
	if len(uris) == 0 {
		return trackURIs(tracks)
	}
	return uris
}

func midpoint(b AttributeBounds) float64 {
	return (b.Min + b.Max) / 2
}

func trackURIs(tracks []TrackFeatures) []string {
	uris := make([]string, len(tracks))
	for i, t := range tracks {
		uris[i] = t.URI
	}
	return uris
}

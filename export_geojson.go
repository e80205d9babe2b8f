package osm2snap

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ToGeoJSON returns GeoJSON representation of the whole graph
/*
	Every node becomes a Point feature carrying its index, every edge becomes a
	LineString feature carrying endpoint indices, length in meters and road name.
*/
func (graph *RouteSnapperGraph) ToGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, node := range graph.Nodes {
		feature := geojson.NewPointFeature([]float64{node.Lon(), node.Lat()})
		feature.SetProperty("node_id", i)
		fc.AddFeature(feature)
	}
	for _, edge := range graph.Edges {
		pts2d := make([][]float64, len(edge.Geometry))
		for i := range edge.Geometry {
			pts2d[i] = []float64{edge.Geometry[i].Lon(), edge.Geometry[i].Lat()}
		}
		feature := geojson.NewLineStringFeature(pts2d)
		feature.SetProperty("node1", int(edge.Node1))
		feature.SetProperty("node2", int(edge.Node2))
		feature.SetProperty("length_meters", edge.LengthMeters)
		if edge.Name != "" {
			feature.SetProperty("name", edge.Name)
		}
		fc.AddFeature(feature)
	}
	return fc
}

// ExportToGeoJSON Saves the graph as a GeoJSON feature collection file
func (graph *RouteSnapperGraph) ExportToGeoJSON(fname string) error {
	data, err := graph.ToGeoJSON().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}
	err = os.WriteFile(fname, data, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}

package osm2snap

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV Saves the graph into a pair of CSV files: (%filename%_nodes.csv and %filename%_edges.csv)
func (graph *RouteSnapperGraph) ExportToCSV(fname string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameNodes := fmt.Sprintf(fnameParts[0] + "_nodes.csv")
	fnameEdges := fmt.Sprintf(fnameParts[0] + "_edges.csv")

	err := graph.exportNodesToCSV(fnameNodes)
	if err != nil {
		return errors.Wrap(err, "Can't export nodes")
	}

	err = graph.exportEdgesToCSV(fnameEdges)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	return nil
}

func (graph *RouteSnapperGraph) exportNodesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"node_id", "longitude", "latitude", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, node := range graph.Nodes {
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%f", node.Lon()),
			fmt.Sprintf("%f", node.Lat()),
			wkt.MarshalString(node),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	return nil
}

func (graph *RouteSnapperGraph) exportEdgesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "node1", "node2", "length_meters", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, edge := range graph.Edges {
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", edge.Node1),
			fmt.Sprintf("%d", edge.Node2),
			fmt.Sprintf("%f", edge.LengthMeters),
			edge.Name,
			wkt.MarshalString(edge.Geometry),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

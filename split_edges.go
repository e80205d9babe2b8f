package osm2snap

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
)

// splitEdges Splits road ways into graph edges at intersections
/*
	A node closes an edge when it opens or ends a way, or when it is referenced
	more than once across all road ways (a way revisiting the same node counts
	it on every visit). Every edge keeps the full polyline between its two
	intersections, its haversine length in meters and the road name of the
	owning way. Raw node identifiers are mapped to dense graph indices in
	discovery order.
*/
func (converter *Converter) splitEdges(nodes map[osm.NodeID]orb.Point, ways map[osm.WayID]*WayData) (*RouteSnapperGraph, error) {
	st := time.Now()
	useCount := make(map[osm.NodeID]int, len(nodes))
	for _, way := range ways {
		for _, nodeID := range way.Nodes {
			useCount[nodeID]++
		}
	}

	graph := &RouteSnapperGraph{}
	nodeIndices := make(map[osm.NodeID]NodeID)
	// Hands out dense indices in discovery order. Every raw identifier gets
	// exactly one graph node no matter how many edges touch it.
	resolveNode := func(nodeID osm.NodeID) NodeID {
		if index, ok := nodeIndices[nodeID]; ok {
			return index
		}
		index := NodeID(len(graph.Nodes))
		nodeIndices[nodeID] = index
		graph.Nodes = append(graph.Nodes, nodes[nodeID])
		return index
	}

	skippedWays := 0
	for wayID, way := range ways {
		if err := checkWayNodes(wayID, way, nodes); err != nil {
			if converter.strictMode {
				return nil, err
			}
			converter.logger.Sugar().Warnf("skipping way %d: %v", wayID, err)
			skippedWays++
			continue
		}
		var sourceNodeID osm.NodeID
		var geometry orb.LineString
		for i, nodeID := range way.Nodes {
			point := nodes[nodeID]
			geometry = append(geometry, point)
			if i == 0 {
				sourceNodeID = nodeID
				continue
			}
			if i == len(way.Nodes)-1 || useCount[nodeID] > 1 {
				graph.Edges = append(graph.Edges, Edge{
					Node1:        resolveNode(sourceNodeID),
					Node2:        resolveNode(nodeID),
					Geometry:     geometry,
					LengthMeters: geo.LengthHaversign(geometry),
					Name:         way.Name,
				})
				sourceNodeID = nodeID
				geometry = orb.LineString{point}
			}
		}
	}
	if skippedWays > 0 {
		converter.logger.Sugar().Warnf("skipped %d ways referencing missing nodes", skippedWays)
	}

	converter.logger.Sugar().Infof("split ways into edges in %v", time.Since(st))
	return graph, nil
}

// checkWayNodes Verifies that every node referenced by the way is present in the node table
func checkWayNodes(wayID osm.WayID, way *WayData, nodes map[osm.NodeID]orb.Point) error {
	for _, nodeID := range way.Nodes {
		if _, ok := nodes[nodeID]; !ok {
			return fmt.Errorf("Missing node with id: %d in way %d", nodeID, wayID)
		}
	}
	return nil
}

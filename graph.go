package osm2snap

import (
	"github.com/paulmach/orb"
)

// NodeID Dense index of a graph node, assigned in discovery order
type NodeID uint32

type Edge struct {
	Geometry     orb.LineString
	Name         string
	LengthMeters float64
	Node1        NodeID
	Node2        NodeID
}

// RouteSnapperGraph Road graph prepared for route snapping
/*
	Nodes - coordinates of intersection nodes; a NodeID is a position in this slice
	Edges - road segments between intersections, in no particular order
*/
type RouteSnapperGraph struct {
	Nodes []orb.Point
	Edges []Edge
}

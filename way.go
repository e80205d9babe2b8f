package osm2snap

import (
	"github.com/paulmach/osm"
)

// WayData Road way extracted from raw OSM data
/*
	Name - value of the "name" tag; empty when the way is unnamed or name retention is disabled
	Nodes - ordered raw OSM node identifiers, as referenced by the way
*/
type WayData struct {
	Name  string
	Nodes []osm.NodeID
}

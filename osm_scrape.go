package osm2snap

import (
	"bytes"
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

const pbfScanProcs = 4

// scrapeElements Extracts node and road way tables from raw OSM data
/*
	Every node element lands in the node table; duplicate identifiers keep the
	last coordinate seen. Only ways carrying the "highway" tag land in the way
	table, with the "name" tag value kept when road name retention is enabled.
	Relations are not used.
*/
func (converter *Converter) scrapeElements(data []byte) (map[osm.NodeID]orb.Point, map[osm.WayID]*WayData, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("Empty OSM data")
	}

	var scanner OSMScanner
	if looksLikeXML(data) {
		scanner = osmxml.New(context.Background(), bytes.NewReader(data))
	} else {
		scanner = osmpbf.New(context.Background(), bytes.NewReader(data), pbfScanProcs)
	}
	defer scanner.Close()

	st := time.Now()
	nodes := make(map[osm.NodeID]orb.Point)
	ways := make(map[osm.WayID]*WayData)

	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			nodes[obj.ID] = orb.Point{obj.Lon, obj.Lat}
		case *osm.Way:
			if !obj.Tags.HasTag("highway") {
				continue
			}
			way := &WayData{
				Nodes: make([]osm.NodeID, 0, len(obj.Nodes)),
			}
			if converter.retainRoadNames {
				way.Name = obj.Tags.Find("name")
			}
			for _, wayNode := range obj.Nodes {
				way.Nodes = append(way.Nodes, wayNode.ID)
			}
			ways[obj.ID] = way
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "Can't scan OSM data")
	}

	converter.logger.Sugar().Infof("scraped osm elements in %v", time.Since(st))
	return nodes, ways, nil
}

// looksLikeXML Guesses whether raw OSM data is XML encoded rather than PBF
func looksLikeXML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

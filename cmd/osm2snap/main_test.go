package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/route-snapper/osm2snap"
)

const sampleOSMXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="osm2snap-test">
	<node id="1" lat="55.751849" lon="37.641735"/>
	<node id="2" lat="55.742235" lon="37.655127"/>
	<node id="3" lat="55.732619" lon="37.668514"/>
	<way id="100">
		<nd ref="1"/>
		<nd ref="2"/>
		<nd ref="3"/>
		<tag k="highway" v="residential"/>
		<tag k="name" v="Big Street"/>
	</way>
</osm>`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	osmFile := filepath.Join(dir, "sample.osm")
	if err := os.WriteFile(osmFile, []byte(sampleOSMXML), 0644); err != nil {
		t.Error(err)
		return
	}

	*osmFileName = osmFile
	*out = filepath.Join(dir, "sample.graph.bin")
	*roadNames = true
	*strictMode = false
	*geojsonOut = filepath.Join(dir, "sample.geojson")
	*csvOut = filepath.Join(dir, "sample.csv")
	*quiet = true

	if err := run(); err != nil {
		t.Error(err)
		return
	}

	graph, err := osm2snap.ReadGraphFromFile(*out)
	if err != nil {
		t.Error(err)
		return
	}
	if len(graph.Nodes) != 2 {
		t.Errorf("Number of nodes must be %d, but got %d", 2, len(graph.Nodes))
	}
	if len(graph.Edges) != 1 {
		t.Errorf("Number of edges must be %d, but got %d", 1, len(graph.Edges))
	}
	for _, fname := range []string{*geojsonOut, filepath.Join(dir, "sample_nodes.csv"), filepath.Join(dir, "sample_edges.csv")} {
		if _, err := os.Stat(fname); err != nil {
			t.Errorf("Export file %s must be written: %v", fname, err)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	*osmFileName = filepath.Join(t.TempDir(), "nowhere.osm.pbf")
	*quiet = true

	if err := run(); err == nil {
		t.Error("Run must fail on missing input file")
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/route-snapper/osm2snap"
	"go.uber.org/zap"
)

var (
	osmFileName = flag.String("file", "map.osm.pbf", "Filename of *.osm.pbf (or *.osm / *.xml) file")
	out         = flag.String("out", "map.graph.bin", "Filename of output route snapper graph (bzip2 compressed binary)")
	roadNames   = flag.Bool("names", true, "Retain road names on edges?")
	strictMode  = flag.Bool("strict", false, "Fail on ways referencing missing nodes? (default is to skip such ways)")
	geojsonOut  = flag.String("geojson", "", "Optional filename for GeoJSON representation of the graph")
	csvOut      = flag.String("csv", "", "Optional filename for CSV representation of the graph. E.g.: if file name is 'map.csv' then 2 files will be produced: 'map_nodes.csv' and 'map_edges.csv'")
	quiet       = flag.Bool("quiet", false, "Suppress progress logging?")
)

func main() {

	flag.Parse()

	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	logger := zap.NewNop()
	if !*quiet {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	converter := osm2snap.NewConverter(
		osm2snap.WithRoadNames(*roadNames),
		osm2snap.WithStrictMode(*strictMode),
		osm2snap.WithLogger(logger),
	)

	graph, err := converter.ConvertFile(*osmFileName)
	if err != nil {
		return err
	}

	/* Graph file */
	if err := graph.WriteToFile(*out); err != nil {
		return err
	}

	/* Optional human readable exports */
	if *geojsonOut != "" {
		if err := graph.ExportToGeoJSON(*geojsonOut); err != nil {
			return err
		}
	}
	if *csvOut != "" {
		if err := graph.ExportToCSV(*csvOut); err != nil {
			return err
		}
	}
	return nil
}

package osm2snap

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Converter struct {
	logger          *zap.Logger
	retainRoadNames bool
	strictMode      bool
}

func (converter *Converter) String() string {
	return fmt.Sprintf(`
Converter parameters:
	retain_road_names?: %t
	strict_mode enabled?: %t
	`,
		converter.retainRoadNames,
		converter.strictMode,
	)
}

func NewConverter(options ...func(*Converter)) *Converter {
	converter := &Converter{
		logger:          zap.NewNop(),
		retainRoadNames: false,
		strictMode:      false,
	}
	for _, option := range options {
		option(converter)
	}
	return converter
}

func WithRoadNames(retainRoadNames bool) func(*Converter) {
	return func(converter *Converter) {
		converter.retainRoadNames = retainRoadNames
	}
}

// WithStrictMode Strict mode fails the whole conversion when a way references
// a node missing from the data. Otherwise such ways are skipped with a warning.
func WithStrictMode(strictMode bool) func(*Converter) {
	return func(converter *Converter) {
		converter.strictMode = strictMode
	}
}

func WithLogger(logger *zap.Logger) func(*Converter) {
	return func(converter *Converter) {
		if logger != nil {
			converter.logger = logger
		}
	}
}

// Convert Builds a route snapper graph from raw OSM data
/*
	Data should be a whole OSM extract, either PBF or XML encoded. Elements are
	scraped into node and road way tables, then ways are split into edges at
	intersections. No partial graph is returned when parsing fails midway.
*/
func (converter *Converter) Convert(data []byte) (*RouteSnapperGraph, error) {
	st := time.Now()
	nodes, ways, err := converter.scrapeElements(data)
	if err != nil {
		return nil, err
	}
	converter.logger.Sugar().Infof("scraped %d nodes and %d ways, splitting ways into edges", len(nodes), len(ways))
	graph, err := converter.splitEdges(nodes, ways)
	if err != nil {
		return nil, err
	}
	converter.logger.Sugar().Infof("built graph with %d nodes and %d edges in %v", len(graph.Nodes), len(graph.Edges), time.Since(st))
	return graph, nil
}

// ConvertFile Reads the whole OSM file into memory and builds a route snapper graph from it
/*
	File should have extension: .osm or .xml / .osm.pbf or .pbf. The actual
	format is detected from the content, not from the extension.
*/
func (converter *Converter) ConvertFile(fileName string) (*RouteSnapperGraph, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read osm file")
	}
	return converter.Convert(data)
}

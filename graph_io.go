package osm2snap

import (
	"encoding/gob"
	"os"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// WriteToFile Saves the graph as a bzip2 compressed gob stream
func (graph *RouteSnapperGraph) WriteToFile(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	bz, err := bzip2.NewWriter(file, &bzip2.WriterConfig{})
	if err != nil {
		return errors.Wrap(err, "Can't prepare bzip2 writer")
	}
	if err := gob.NewEncoder(bz).Encode(graph); err != nil {
		bz.Close()
		return errors.Wrap(err, "Can't encode graph")
	}
	if err := bz.Close(); err != nil {
		return errors.Wrap(err, "Can't finish writing graph")
	}
	return nil
}

// ReadGraphFromFile Loads a graph written by WriteToFile
func ReadGraphFromFile(fileName string) (*RouteSnapperGraph, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	bz, err := bzip2.NewReader(file, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare bzip2 reader")
	}
	graph := &RouteSnapperGraph{}
	if err := gob.NewDecoder(bz).Decode(graph); err != nil {
		return nil, errors.Wrap(err, "Can't decode graph")
	}
	return graph, nil
}

// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/katalvlaran/structgrid/geometry"
)

// DefaultDumpPath is used by DumpFile when path is empty.
const DefaultDumpPath = "vertex-dump.txt"

const lineFormat = "vertex id: %d, x: %.4f, y: %.4f, z: %.4f\n"

// Source yields vertices in id order. *grid.VertexCollection satisfies it.
type Source interface {
	All() iter.Seq[geometry.Vertex]
}

// WriteVertexDump writes one line per vertex of src to w and returns the
// number of lines written.
func WriteVertexDump(w io.Writer, src Source) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	bw := bufio.NewWriter(w)
	n := 0
	for v := range src.All() {
		if _, err := fmt.Fprintf(bw, lineFormat, v.ID, v.Coords.X, v.Coords.Y, v.Coords.Z); err != nil {
			return n, fmt.Errorf("export: vertex %d: %w", v.ID, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("export: flush: %w", err)
	}
	return n, nil
}

// ReadVertexDump parses a dump produced by WriteVertexDump. Blank lines are
// skipped; coordinates carry the four decimals of the dump, no more.
func ReadVertexDump(r io.Reader) ([]geometry.Vertex, error) {
	var out []geometry.Vertex
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var (
			id      int
			x, y, z float64
		)
		if _, err := fmt.Sscanf(text, "vertex id: %d, x: %g, y: %g, z: %g", &id, &x, &y, &z); err != nil {
			return out, fmt.Errorf("line %d: %q: %w", line, text, ErrMalformedDump)
		}
		out = append(out, geometry.NewVertex(id, x, y, z))
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("export: read dump: %w", err)
	}
	return out, nil
}

// DumpFile writes the vertex dump of src to path (DefaultDumpPath when
// empty), truncating any existing file.
func DumpFile(path string, src Source) (err error) {
	if src == nil {
		return ErrNilSource
	}
	if path == "" {
		path = DefaultDumpPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	w, err := compressorFor(path, f)
	if err != nil {
		return err
	}
	if _, err = WriteVertexDump(w, src); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("export: finish %s: %w", path, err)
	}
	return nil
}

// LoadDumpFile reads a dump written by DumpFile, decompressing by extension.
func LoadDumpFile(path string) ([]geometry.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	r, err := decompressorFor(path, f)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadVertexDump(r)
}

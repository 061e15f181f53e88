package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/subiso/graph"
)

// ErrEmptyInput indicates the reader produced no usable lines at all.
var ErrEmptyInput = errors.New("graphio: empty input")

// Load parses a Graph from r using the format documented in doc.go.
// The Directed option, if any, is forwarded to graph.New.
func Load(r io.Reader, opts ...graph.Option) (*graph.Graph, error) {
	lines := newLineScanner(r)

	nStr, ok := lines.next()
	if !ok {
		return nil, ErrEmptyInput
	}
	n, err := parseInt(nStr)
	if err != nil {
		return nil, lines.wrap(err, "node count")
	}

	g := graph.New(opts...)
	for i := 0; i < n; i++ {
		s, ok := lines.next()
		if !ok {
			return nil, lines.wrap(fmt.Errorf("expected %d node labels, got %d", n, i), "node labels")
		}
		label, err := parseInt(s)
		if err != nil {
			return nil, lines.wrap(err, "node label")
		}
		if id := g.AddNode(graph.Label(label)); id != i {
			return nil, lines.wrap(fmt.Errorf("unexpected node id %d, want %d", id, i), "node label")
		}
	}

	mStr, ok := lines.next()
	if !ok {
		return nil, lines.wrap(errors.New("expected edge count"), "edge count")
	}
	m, err := parseInt(mStr)
	if err != nil {
		return nil, lines.wrap(err, "edge count")
	}

	for i := 0; i < m; i++ {
		s, ok := lines.next()
		if !ok {
			return nil, lines.wrap(fmt.Errorf("expected %d edges, got %d", m, i), "edge")
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, lines.wrap(fmt.Errorf("expected \"from to\", got %q", s), "edge")
		}
		from, err := parseInt(fields[0])
		if err != nil {
			return nil, lines.wrap(err, "edge from")
		}
		to, err := parseInt(fields[1])
		if err != nil {
			return nil, lines.wrap(err, "edge to")
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, lines.wrap(err, "edge")
		}
	}

	return g, nil
}

// LoadFile opens path and parses a Graph from its contents.
func LoadFile(path string, opts ...graph.Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return g, nil
}

// lineScanner yields non-blank, non-comment lines with 1-based line numbers
// for error reporting.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

func (l *lineScanner) next() (string, bool) {
	for l.sc.Scan() {
		l.line++
		s := strings.TrimSpace(l.sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		return s, true
	}

	return "", false
}

func (l *lineScanner) wrap(err error, what string) error {
	return fmt.Errorf("graphio: line %d (%s): %w", l.line, what, err)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}

	return v, nil
}

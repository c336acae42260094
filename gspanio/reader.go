package gspanio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cgspan/gstore"
)

// readerConfig holds ReadGraphs' tunables.
type readerConfig struct {
	maxLineLength int
}

// ReaderOption configures ReadGraphs.
type ReaderOption func(*readerConfig)

// WithMaxLineLength overrides bufio.Scanner's default buffer size, for
// inputs with unusually long lines.
func WithMaxLineLength(n int) ReaderOption {
	return func(c *readerConfig) { c.maxLineLength = n }
}

// ReadGraphs parses r in the line-oriented format of spec §6.1 and returns
// one gstore.RawGraph per "t # <gid>" block, in the order they appear.
func ReadGraphs(r io.Reader, opts ...ReaderOption) ([]*gstore.RawGraph, error) {
	cfg := readerConfig{maxLineLength: bufio.MaxScanTokenSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), cfg.maxLineLength)

	var graphs []*gstore.RawGraph
	var cur *gstore.RawGraph
	lineNo := 0
	var offset int64

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		lineOffset := offset
		offset += int64(len(line)) + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "t":
			gid, err := parseHeader(fields, lineNo, lineOffset)
			if err != nil {
				return nil, err
			}
			cur = gstore.NewRawGraph(gid)
			graphs = append(graphs, cur)

		case "v":
			if cur == nil {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: "vertex line before any \"t\" header", Err: ErrMalformedLine}
			}
			id, label, err := parseVertex(fields, lineNo, lineOffset)
			if err != nil {
				return nil, err
			}
			if err := cur.AddVertex(id, label); err != nil {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: "duplicate vertex", Err: ErrDuplicateVertex}
			}

		case "e":
			if cur == nil {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: "edge line before any \"t\" header", Err: ErrMalformedLine}
			}
			v1, v2, label, err := parseEdge(fields, lineNo, lineOffset)
			if err != nil {
				return nil, err
			}
			if _, ok := cur.Label(v1); !ok {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: fmt.Sprintf("edge references undeclared vertex %d", v1), Err: ErrForwardReference}
			}
			if _, ok := cur.Label(v2); !ok {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: fmt.Sprintf("edge references undeclared vertex %d", v2), Err: ErrForwardReference}
			}
			if err := cur.AddEdge(v1, v2, label); err != nil {
				return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: "duplicate edge", Err: ErrDuplicateEdge}
			}

		default:
			return nil, &ErrParse{Line: lineNo, Offset: lineOffset, Msg: fmt.Sprintf("unrecognized token %q", fields[0]), Err: ErrUnknownToken}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gspanio: reading input: %w", err)
	}

	return graphs, nil
}

func parseHeader(fields []string, line int, offset int64) (int, error) {
	if len(fields) != 3 || fields[1] != "#" {
		return 0, &ErrParse{Line: line, Offset: offset, Msg: "expected \"t # <gid>\"", Err: ErrMalformedLine}
	}
	gid, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, &ErrParse{Line: line, Offset: offset, Msg: "graph id is not an integer", Err: ErrMalformedLine}
	}

	return gid, nil
}

func parseVertex(fields []string, line int, offset int64) (id, label int, err error) {
	if len(fields) != 3 {
		return 0, 0, &ErrParse{Line: line, Offset: offset, Msg: "expected \"v <id> <label>\"", Err: ErrMalformedLine}
	}
	id, err1 := strconv.Atoi(fields[1])
	label, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return 0, 0, &ErrParse{Line: line, Offset: offset, Msg: "vertex id/label is not an integer", Err: ErrMalformedLine}
	}

	return id, label, nil
}

func parseEdge(fields []string, line int, offset int64) (v1, v2, label int, err error) {
	if len(fields) != 4 {
		return 0, 0, 0, &ErrParse{Line: line, Offset: offset, Msg: "expected \"e <v1> <v2> <label>\"", Err: ErrMalformedLine}
	}
	v1, err1 := strconv.Atoi(fields[1])
	v2, err2 := strconv.Atoi(fields[2])
	label, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, &ErrParse{Line: line, Offset: offset, Msg: "edge endpoint/label is not an integer", Err: ErrMalformedLine}
	}

	return v1, v2, label, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/emd/wasserstein"
)

var errInput = errors.New("emd: invalid input")

// document is the JSON shape accepted by -input.
type document struct {
	Left  []float64 `json:"left"`
	Right []float64 `json:"right"`
}

// result is what -json prints.
type result struct {
	Method   string             `json:"method"`
	Distance float64            `json:"distance"`
	Moves    []wasserstein.Move `json:"moves,omitempty"`
}

// parseList reads a comma separated list of masses; blanks around entries
// are ignored and an empty string is an empty list.
func parseList(name, s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -%s entry %d: %v", errInput, name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// decodeDocument parses a JSON input document.
func decodeDocument(data []byte) (document, error) {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("%w: %v", errInput, err)
	}
	if doc.Left == nil {
		doc.Left = []float64{}
	}
	if doc.Right == nil {
		doc.Right = []float64{}
	}
	return doc, nil
}

// loadInput picks the distributions from the file when path is set, or
// from the inline lists otherwise. Mixing both is rejected.
func loadInput(path, left, right string) (document, error) {
	if path != "" {
		if left != "" || right != "" {
			return document{}, fmt.Errorf("%w: -input cannot be combined with -left/-right", errInput)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return document{}, fmt.Errorf("emd: read %s: %w", path, err)
		}
		return decodeDocument(data)
	}

	l, err := parseList("left", left)
	if err != nil {
		return document{}, err
	}
	r, err := parseList("right", right)
	if err != nil {
		return document{}, err
	}
	return document{Left: l, Right: r}, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
)

type printer interface {
	Print(any) error
}

type jsonPrinter struct{ *json.Encoder }

func (p jsonPrinter) Print(v any) error { return p.Encode(v) }

type yamlPrinter struct{ io.Writer }

func (p yamlPrinter) Print(v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.Write(b)
	return err
}

// textPrinter writes reports for people to read.
type textPrinter struct{ io.Writer }

func (p textPrinter) Print(v any) error {
	switch v := v.(type) {
	case report:
		return p.report(v)
	case []report:
		for i, r := range v {
			if i > 0 {
				fmt.Fprintln(p)
			}
			if err := p.report(r); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, s := range v {
			if _, err := fmt.Fprintln(p, s); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(p, v)
		return err
	}
}

func (p textPrinter) report(r report) error {
	lines := [][2]any{
		{"Algorithm", r.Algorithm},
		{"Route", strings.Join(r.Route, " -> ")},
		{"Total distance", r.Cost},
		{"Execution time", r.Elapsed},
		{"Memory", fmt.Sprintf("%d bytes", r.MemoryBytes)},
		{"Operations", r.Operations},
		{"Nodes visited", r.NodesVisited},
		{"Edges examined", r.EdgesExamined},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(p, "%-16s%v\n", l[0].(string)+":", l[1]); err != nil {
			return err
		}
	}
	if !r.Complete {
		_, err := fmt.Fprintln(p, "No tour with every distance known was found.")
		return err
	}
	return nil
}

func newPrinter(w io.Writer, format string) (printer, error) {
	switch format {
	case config.OutputJSON:
		return jsonPrinter{json.NewEncoder(w)}, nil

	case config.OutputJSONPretty:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return jsonPrinter{e}, nil

	case config.OutputYAML:
		return yamlPrinter{w}, nil

	case config.OutputText:
		return textPrinter{w}, nil

	default:
		return nil, fmt.Errorf("invalid output type: %v", format)
	}
}

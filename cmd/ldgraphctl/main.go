// Command ldgraphctl is a thin inspection harness over ldgraph: parse a
// JSON-LD document into a graph, print counts, or export it back out
// through compaction or framing.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/ldgraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML config accepted by --config, mirroring
// ldgraph.ParseConfig's ingest-time knobs.
type fileConfig struct {
	Base      string `yaml:"base"`
	Merge     bool   `yaml:"merge"`
	Unique    bool   `yaml:"unique"`
	Normalize bool   `yaml:"normalize"`
}

func loadFileConfig(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func parseDocument(docPath, configPath string) (*ldgraph.Parser, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", docPath, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docPath, err)
	}

	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return nil, err
	}

	var opts []ldgraph.ParseOption
	if cfg.Base != "" {
		opts = append(opts, ldgraph.WithBase(cfg.Base))
	}
	if cfg.Merge {
		opts = append(opts, ldgraph.WithMerge())
	}
	if cfg.Unique {
		opts = append(opts, ldgraph.WithUnique())
	}

	p := ldgraph.NewParser()
	if err := p.Parse(context.Background(), doc, opts...); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return p, nil
}

func loadCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "load <file.jsonld>",
		Short: "Parse a JSON-LD document into a fresh graph and print vertex/edge counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := parseDocument(args[0], configPath)
			if err != nil {
				return err
			}
			fmt.Printf("vertices: %d\n", p.Graph().VertexCount())
			fmt.Printf("edges: %d\n", p.Graph().EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}

func statsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "stats <file.jsonld>",
		Short: "Print per-label edge counts plus blank-node and typeless-vertex counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := parseDocument(args[0], configPath)
			if err != nil {
				return err
			}
			g := p.Graph()

			counts := make(map[string]int)
			for _, e := range g.GetEdges("") {
				counts[e.Label]++
			}
			labels := make([]string, 0, len(counts))
			for label := range counts {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Printf("%s: %d\n", label, counts[label])
			}
			fmt.Printf("blank nodes: %d\n", len(g.BlankNodes()))
			fmt.Printf("typeless vertices: %d\n", len(g.TypelessVertices()))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}

func exportCmd() *cobra.Command {
	var configPath, contextPath, framePath string
	cmd := &cobra.Command{
		Use:   "export <file.jsonld>",
		Short: "Load a document and print its compacted or framed export",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if contextPath == "" {
				return fmt.Errorf("ldgraphctl export: --context is required")
			}
			p, err := parseDocument(args[0], configPath)
			if err != nil {
				return err
			}

			ctxData, err := os.ReadFile(contextPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", contextPath, err)
			}
			var ctxDoc any
			if err := json.Unmarshal(ctxData, &ctxDoc); err != nil {
				return fmt.Errorf("parsing %s: %w", contextPath, err)
			}

			var opts ldgraph.ExportOptions
			if framePath != "" {
				frameData, err := os.ReadFile(framePath)
				if err != nil {
					return fmt.Errorf("reading %s: %w", framePath, err)
				}
				var frame map[string]any
				if err := json.Unmarshal(frameData, &frame); err != nil {
					return fmt.Errorf("parsing %s: %w", framePath, err)
				}
				opts.Frame = frame
			}

			result, err := p.Exporter().ToJSON(context.Background(), []any{ctxDoc}, opts)
			if err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&contextPath, "context", "", "path to the @context JSON document")
	cmd.Flags().StringVar(&framePath, "frame", "", "optional path to a JSON-LD frame document")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "ldgraphctl",
		Short: "Inspect and debug JSON-LD documents loaded through ldgraph",
	}
	root.AddCommand(loadCmd(), statsCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

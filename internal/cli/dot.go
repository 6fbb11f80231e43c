package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var (
		out    string
		render bool
	)
	cmd := &cobra.Command{
		Use:   "dot <config.toml>",
		Short: "Export the enumerated word graph as Graphviz DOT",
		Long: "dot enumerates the configured action to completion and writes its word\n" +
			"graph in DOT format. With --render the graph is rendered to SVG instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := LoadConfig(args[0])
			if err != nil {
				return err
			}
			a, err := BuildAction(cfg, logger)
			if err != nil {
				return err
			}

			dot := a.WordGraph().DOT()
			logger.Debug("word graph exported", "points", a.CurrentSize())

			payload := []byte(dot)
			if render {
				payload, err = renderSVG(cmd, dot)
				if err != nil {
					return err
				}
				if out != "" && !strings.HasSuffix(out, ".svg") {
					out += ".svg"
				}
			}

			if out == "" {
				cmd.Print(string(payload))
				return nil
			}
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.Info("wrote word graph", "path", out, "bytes", len(payload))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&render, "render", false, "render to SVG via graphviz")
	return cmd
}

// renderSVG lays out the DOT source with graphviz and returns SVG bytes.
func renderSVG(cmd *cobra.Command, dot string) ([]byte, error) {
	ctx := cmd.Context()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse dot: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return buf.Bytes(), nil
}

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/showcase/page"
)

func newLayoutCmd() *cobra.Command {
	var width, height int
	var markdown bool
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print element geometry for a screen size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			content, err := page.Load(cfg.Page)
			if err != nil {
				return err
			}
			return renderLayout(cmd.OutOrStdout(), page.New(content, width), height, markdown)
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "screen width in columns")
	cmd.Flags().IntVar(&height, "height", 30, "screen height in rows")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render as a markdown table")
	return cmd
}

func renderLayout(w io.Writer, d *page.Document, height int, markdown bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Role", "X", "Y", "W", "H", "Fixed", "Fade", "Tab", "Target"})
	for _, e := range d.Elements {
		t.AppendRow(table.Row{
			e.ID, e.Role, e.Area.X, e.Area.Y, e.Area.Width, e.Area.Height,
			flag(e.Fixed), flag(e.FadeIn), flag(e.Focusable()), e.Target,
		})
	}
	t.AppendFooter(table.Row{"page", "", "", d.Height, d.Width, "", "", "", "", fmt.Sprintf("max scroll %d", d.MaxScroll(height))})

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ByLCY/edgeposter/layout"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleName    = lipgloss.NewStyle().Bold(true).Width(10)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "列出可用的主题配色与画布比例",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPalettes(cmd.OutOrStdout())
		},
	}
}

func printPalettes(w io.Writer) error {
	var b strings.Builder
	b.WriteString(styleHeading.Render("Themes"))
	b.WriteString("\n")
	for _, t := range layout.Themes() {
		p, err := layout.ResolvePalette(t)
		if err != nil {
			return err
		}
		b.WriteString(styleName.Render(string(t)))
		for _, c := range []layout.Color{p.GradientStart, p.GradientMid, p.Accent} {
			b.WriteString(swatch(c))
			b.WriteString(" ")
			b.WriteString(styleDim.Render(c.String()))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHeading.Render("Aspects"))
	b.WriteString("\n")
	for _, a := range layout.Aspects() {
		d, err := layout.ResolveSize(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s%s\n", styleName.Render(string(a)), styleDim.Render(fmt.Sprintf("%d×%d", d.Width, d.Height)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func swatch(c layout.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.String())).Render("   ")
}

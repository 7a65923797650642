package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/internal/painter"
	"github.com/chapar-rest/wordmark/workbench"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored highlights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			highlights := s.store().List()
			out := cmd.OutOrStdout()
			if len(highlights) == 0 {
				fmt.Fprintln(out, "No highlights")
				return nil
			}

			width := 0
			for _, h := range highlights {
				width = max(width, len([]rune(h.Word)))
			}
			for _, h := range highlights {
				suffix := ""
				if h.IgnoreCase {
					suffix = "  (ignore case)"
				}
				fmt.Fprintf(out, "%s %-*s  %s%s\n", s.renderer.Swatch(h.Color), width, h.Word, h.Color, suffix)
			}
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		svgPath string
		scale   float32
	)

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a file with every highlight painted",
		Long: `Prints FILE with every stored highlight painted in the terminal. With --svg
the highlighted text is also drawn to an SVG image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			ed, err := s.open(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.renderer.Render(ed))

			if svgPath == "" {
				return nil
			}
			return writeSVG(svgPath, ed, painter.New(painter.WithScale(scale)))
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "also draw the highlighted file to this SVG image")
	cmd.Flags().Float32Var(&scale, "scale", 1, "pixels per dp of the SVG image")
	return cmd
}

func writeSVG(path string, ed *workbench.Editor, p *painter.Painter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := p.WriteSVG(f, ed); err != nil {
		f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		selection  string
		ignoreCase bool
		pickColor  bool
	)

	cmd := &cobra.Command{
		Use:   "add FILE --select TEXT",
		Short: "Highlight every occurrence of TEXT",
		Long: `Selects the first occurrence of TEXT in FILE and highlights it the way the
editor commands do. Without --pick-color a random pastel color is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := wordmark.CommandHighlightSelection
			switch {
			case pickColor && ignoreCase:
				return fmt.Errorf("--pick-color cannot be combined with --ignore-case")
			case pickColor:
				id = wordmark.CommandHighlightWithCustomColor
			case ignoreCase:
				id = wordmark.CommandAddHighlightIgnoreCase
			}
			return runOnSelection(cmd, opts, args[0], selection, id)
		},
	}

	cmd.Flags().StringVar(&selection, "select", "", "text to select before running the command")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match regardless of case")
	cmd.Flags().BoolVar(&pickColor, "pick-color", false, "choose the color from the palette or enter a hex code")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "remove FILE --select TEXT",
		Short: "Remove the highlight of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnSelection(cmd, opts, args[0], selection, wordmark.CommandRemoveHighlight)
		},
	}

	cmd.Flags().StringVar(&selection, "select", "", "text to select before running the command")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all highlights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.wb.ExecuteCommand(cmd.Context(), wordmark.CommandRemoveAllHighlights)
		},
	}
}

// runOnSelection opens file, selects text and runs the command id, then
// prints the file with the resulting highlights.
func runOnSelection(cmd *cobra.Command, opts *rootOptions, file, text, id string) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ed, err := s.open(file)
	if err != nil {
		return err
	}
	if err := selectText(ed, text); err != nil {
		return err
	}

	if err := s.wb.ExecuteCommand(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.renderer.Render(ed))
	return nil
}

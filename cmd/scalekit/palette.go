package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
	"github.com/alexisbeaulieu97/scalekit/internal/tui/components"
)

type paletteOptions struct {
	jsonOutput bool
}

func newPaletteCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Create, inspect and manage palettes",
	}

	cmd.AddCommand(newPaletteCreateCmd(flags))
	cmd.AddCommand(newPaletteListCmd(flags))
	cmd.AddCommand(newPaletteShowCmd(flags))
	cmd.AddCommand(newPaletteDuplicateCmd(flags))
	cmd.AddCommand(newPaletteDeleteCmd(flags))
	cmd.AddCommand(newPaletteRenameCmd(flags))

	return cmd
}

func newPaletteCreateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a palette seeded with example scales",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			sess, err := openSession(cmd, flags, "create palette")
			if err != nil {
				return err
			}
			before := sess.History.Current()
			sess.Dispatch(document.CreatePalette{Name: name})
			after := sess.History.Current()
			if err := closeSession(cmd, sess, "create palette"); err != nil {
				return err
			}

			id := newPaletteID(before, after)
			fmt.Fprintf(cmd.OutOrStdout(), "Created palette %q (%s)\n", after[id].Name, id)
			return nil
		},
	}
}

func newPaletteListCmd(flags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, flags, "list palettes")
			if err != nil {
				return err
			}
			doc := sess.History.Current()
			if err := closeSession(cmd, sess, "list palettes"); err != nil {
				return err
			}

			if opts.jsonOutput {
				return renderListJSON(cmd.OutOrStdout(), doc)
			}
			if len(doc) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No palettes yet.")
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'scalekit palette create <name>' to add your first palette.")
				return nil
			}
			return renderListTable(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listJSONPalette struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Scales        int    `json:"scales"`
	Curves        int    `json:"curves"`
	NamingSchemes int    `json:"naming_schemes"`
}

type listJSONPayload struct {
	Version  string            `json:"version"`
	Count    int               `json:"count"`
	Palettes []listJSONPalette `json:"palettes"`
}

func renderListJSON(w io.Writer, doc model.Document) error {
	ids := doc.IDs()
	payload := listJSONPayload{
		Version:  "1.0",
		Count:    len(ids),
		Palettes: make([]listJSONPalette, len(ids)),
	}
	for i, id := range ids {
		p := doc[id]
		payload.Palettes[i] = listJSONPalette{
			ID:            p.ID,
			Name:          p.Name,
			Scales:        len(p.Scales),
			Curves:        len(p.Curves),
			NamingSchemes: len(p.NamingSchemes),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderListTable(w io.Writer, doc model.Document) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tSCALES\tCURVES\tSCHEMES")
	for _, id := range doc.IDs() {
		p := doc[id]
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\t%d\n",
			p.ID,
			valueOrFallback(p.Name, "(no name)"),
			len(p.Scales),
			len(p.Curves),
			len(p.NamingSchemes),
		)
	}
	return writer.Flush()
}

func newPaletteShowCmd(flags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "show <palette>",
		Short: "Show the resolved colors of a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, flags, "show palette")
			if err != nil {
				return err
			}
			p, resolveErr := resolvePalette(sess.History.Current(), args[0])
			if err := closeSession(cmd, sess, "show palette"); err != nil {
				return err
			}
			if resolveErr != nil {
				return newCommandError("show palette", "resolving palette", resolveErr, "Run 'scalekit palette list' to see available palettes.")
			}

			if opts.jsonOutput {
				return renderShowJSON(cmd.OutOrStdout(), p)
			}
			if isTerminal(cmd.OutOrStdout()) {
				renderShowSwatches(cmd.OutOrStdout(), p)
				return nil
			}
			renderShowPlain(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type showJSONColor struct {
	Name       string  `json:"name,omitempty"`
	Hex        string  `json:"hex"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

type showJSONScale struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Curves map[string]string `json:"curves,omitempty"`
	Colors []showJSONColor   `json:"colors"`
}

type showJSONPayload struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	BackgroundColor string          `json:"background_color"`
	Scales          []showJSONScale `json:"scales"`
}

func renderShowJSON(w io.Writer, p model.Palette) error {
	payload := showJSONPayload{
		ID:              p.ID,
		Name:            p.Name,
		BackgroundColor: p.BackgroundColor,
		Scales:          []showJSONScale{},
	}

	for _, s := range p.OrderedScales() {
		labels := scaleLabels(p, s)
		out := showJSONScale{ID: s.ID, Name: s.Name}
		for _, ch := range color.Channels {
			if id, ok := s.CurveFor(ch); ok {
				if out.Curves == nil {
					out.Curves = map[string]string{}
				}
				out.Curves[ch.String()] = p.Curves[id].Name
			}
		}
		for i, c := range curve.ResolveAll(p.Curves, s) {
			out.Colors = append(out.Colors, showJSONColor{
				Name:       labelAt(labels, i),
				Hex:        c.Hex(),
				Hue:        color.Round(c.Hue),
				Saturation: color.Round(c.Saturation),
				Lightness:  color.Round(c.Lightness),
			})
		}
		payload.Scales = append(payload.Scales, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderShowSwatches(w io.Writer, p model.Palette) {
	fmt.Fprintln(w, p.Name)
	for _, s := range p.OrderedScales() {
		row := components.Swatches{
			Name:   s.Name,
			Colors: curve.ResolveAll(p.Curves, s),
			Labels: scaleLabels(p, s),
		}
		fmt.Fprintln(w, row.View())
	}
}

func renderShowPlain(w io.Writer, p model.Palette) {
	fmt.Fprintf(w, "%s (%s)\n", valueOrFallback(p.Name, "(no name)"), p.ID)
	for _, s := range p.OrderedScales() {
		fmt.Fprintf(w, "\n%s\n", valueOrFallback(s.Name, "(no name)"))
		writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		labels := scaleLabels(p, s)
		for i, c := range curve.ResolveAll(p.Curves, s) {
			label := labelAt(labels, i)
			if label == "" {
				label = fmt.Sprint(i + 1)
			}
			fmt.Fprintf(writer, "  %s\t%s\t%s\n", label, c.Hex(), c.String())
		}
		_ = writer.Flush()
	}
}

func scaleLabels(p model.Palette, s model.Scale) []string {
	if s.NamingSchemeID == "" {
		return nil
	}
	return p.NamingSchemes[s.NamingSchemeID].Names
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func newPaletteDuplicateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <palette>",
		Short: "Copy a palette with fresh ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutatePalette(cmd, flags, "duplicate palette", args[0], func(p model.Palette) document.Command {
				return document.DuplicatePalette{PaletteID: p.ID}
			}, func(out io.Writer, p model.Palette, before, after model.Document) {
				id := newPaletteID(before, after)
				fmt.Fprintf(out, "Duplicated %q as %q (%s)\n", p.Name, after[id].Name, id)
			})
		},
	}
}

func newPaletteDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <palette>",
		Short: "Delete a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutatePalette(cmd, flags, "delete palette", args[0], func(p model.Palette) document.Command {
				return document.DeletePalette{PaletteID: p.ID}
			}, func(out io.Writer, p model.Palette, _, _ model.Document) {
				fmt.Fprintf(out, "Deleted palette %q (%s)\n", p.Name, p.ID)
			})
		},
	}
}

func newPaletteRenameCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <palette> <name>",
		Short: "Rename a palette",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[1])
			return mutatePalette(cmd, flags, "rename palette", args[0], func(p model.Palette) document.Command {
				return document.ChangePaletteName{PaletteID: p.ID, Name: name}
			}, func(out io.Writer, p model.Palette, _, _ model.Document) {
				fmt.Fprintf(out, "Renamed %q to %q\n", p.Name, name)
			})
		},
	}
}

// mutatePalette resolves ref, dispatches the command built from it and
// reports the outcome once the session has saved.
func mutatePalette(
	cmd *cobra.Command,
	flags *rootFlags,
	operation, ref string,
	build func(model.Palette) document.Command,
	report func(io.Writer, model.Palette, model.Document, model.Document),
) error {
	sess, err := openSession(cmd, flags, operation)
	if err != nil {
		return err
	}

	before := sess.History.Current()
	p, err := resolvePalette(before, ref)
	if err != nil {
		_ = closeSession(cmd, sess, operation)
		return newCommandError(operation, "resolving palette", err, "Run 'scalekit palette list' to see available palettes.")
	}

	changed := sess.Dispatch(build(p))
	after := sess.History.Current()
	if err := closeSession(cmd, sess, operation); err != nil {
		return err
	}

	if !changed {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
		return nil
	}
	report(cmd.OutOrStdout(), p, before, after)
	return nil
}

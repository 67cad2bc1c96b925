package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"faraid-engine/internal/config"
	"faraid-engine/internal/engine"
	"faraid-engine/internal/faraid"
	"faraid-engine/internal/model"
)

type calcOptions struct {
	estate     string
	husband    bool
	wife       bool
	wives      int
	father     bool
	mother     bool
	sons       int
	daughters  int
	output     string
	spouseRadd bool
	places     int32
}

func newCalcCommand(load func() (*config.Config, error)) *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the distribution for one household",
		Example: `  faraid calc --estate 1200 --husband --sons 2
  faraid calc --estate 90000 --wife --wives 2 --daughters 1 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("spouse-radd") {
				cfg.Calc.SpouseRadd = opts.spouseRadd
			}
			if cmd.Flags().Changed("places") {
				cfg.Calc.AmountPlaces = opts.places
			}
			if err := cfg.Calc.Validate(); err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), opts, cfg.Calc.Calculator())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.estate, "estate", "", "estate value")
	f.BoolVar(&opts.husband, "husband", false, "husband survives")
	f.BoolVar(&opts.wife, "wife", false, "wife survives")
	f.IntVar(&opts.wives, "wives", 1, "number of surviving wives (1-4)")
	f.BoolVar(&opts.father, "father", false, "father survives")
	f.BoolVar(&opts.mother, "mother", false, "mother survives")
	f.IntVar(&opts.sons, "sons", 0, "number of sons (at most 100)")
	f.IntVar(&opts.daughters, "daughters", 0, "number of daughters (at most 100)")
	f.StringVarP(&opts.output, "output", "o", "table", "output format: table, json or yaml")
	f.BoolVar(&opts.spouseRadd, "spouse-radd", false, "return an unclaimed remainder to the spouse")
	f.Int32Var(&opts.places, "places", faraid.DefaultAmountPlaces, "decimal places for amounts")
	_ = cmd.MarkFlagRequired("estate")

	return cmd
}

func runCalc(w io.Writer, opts calcOptions, calc faraid.Calculator) error {
	switch opts.output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	estate, err := faraid.ParseEstate(opts.estate)
	if err != nil {
		return err
	}

	dist, err := calc.Compute(faraid.Household{
		Estate:     estate,
		Husband:    opts.husband,
		Wife:       opts.wife,
		WivesCount: opts.wives,
		Father:     opts.father,
		Mother:     opts.mother,
		Sons:       opts.sons,
		Daughters:  opts.daughters,
	})
	if err != nil {
		return err
	}

	out := engine.ToModel(dist)
	switch opts.output {
	case "json":
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderTable(out))
		return err
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Italic(true)
)

func renderTable(d *model.Distribution) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Heir", "Relation", "Category", "Share", "Percent", "Amount").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, h := range d.Heirs {
		t.Row(h.ID, h.Relation, h.Category, h.Share, fmt.Sprintf("%.2f%%", h.Percentage), h.Amount.String())
	}

	var b strings.Builder
	b.WriteString("Estate: " + d.Estate.String() + "\n")
	b.WriteString(t.Render())
	switch d.Adjustment {
	case faraid.Awl.String():
		b.WriteString("\n" + noteStyle.Render("'Awl: shares totalled "+d.RawTotal+" and were reduced proportionally."))
	case faraid.Radd.String():
		b.WriteString("\n" + noteStyle.Render("Radd: shares totalled "+d.RawTotal+"; the remainder was returned to the fixed heirs."))
	}
	return b.String()
}

package tax

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxcalc/internal/domain"
)

// tablesFile is the on-disk YAML layout:
//
//	tables:
//	  - year: "2025-2026"
//	    brackets:
//	      - {lower: "0", upper: "18200", rate: "0", base_tax: "0"}
//	      - {lower: "18200", upper: "45000", rate: "0.16", base_tax: "0"}
//	      - {lower: "45000", rate: "0.30", base_tax: "4288"}
//
// A bracket without upper is the unbounded top bracket.
type tablesFile struct {
	Tables []tableYAML `yaml:"tables"`
}

type tableYAML struct {
	Year     string        `yaml:"year"`
	Brackets []bracketYAML `yaml:"brackets"`
}

type bracketYAML struct {
	Lower   string `yaml:"lower"`
	Upper   string `yaml:"upper"`
	Rate    string `yaml:"rate"`
	BaseTax string `yaml:"base_tax"`
}

// ReadTables decodes bracket tables from YAML. The tables are not yet checked
// for contiguity; NewSchedule or Schedule.Merge does that.
func ReadTables(r io.Reader) ([]domain.Table, error) {
	var f tablesFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding bracket tables: %w", err)
	}
	out := make([]domain.Table, 0, len(f.Tables))
	for _, t := range f.Tables {
		table := domain.Table{Year: domain.FiscalYear(t.Year)}
		for i, b := range t.Brackets {
			br, err := b.toBracket()
			if err != nil {
				return nil, fmt.Errorf("%s bracket %d: %w", t.Year, i, err)
			}
			table.Brackets = append(table.Brackets, br)
		}
		out = append(out, table)
	}
	return out, nil
}

// LoadSchedule reads tables from the YAML file at path and merges them over
// base. Tables for an existing year replace it.
func LoadSchedule(base *Schedule, path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tables, err := ReadTables(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base.Merge(tables...)
}

func (b bracketYAML) toBracket() (domain.Bracket, error) {
	var out domain.Bracket
	var err error
	if out.Lower, err = parseAmount("lower", b.Lower); err != nil {
		return out, err
	}
	if out.Rate, err = parseAmount("rate", b.Rate); err != nil {
		return out, err
	}
	if out.BaseTax, err = parseAmount("base_tax", b.BaseTax); err != nil {
		return out, err
	}
	if b.Upper == "" {
		out.Unbounded = true
		return out, nil
	}
	out.Upper, err = parseAmount("upper", b.Upper)
	return out, err
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

package targets

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"

	"github.com/christopherburke/radecparse/coords"
)

// Target is one row of a target list.
type Target struct {
	Name        string `csv:"name"`
	Coordinates string `csv:"coordinates"`
	Slug        string `csv:"-"`
}

// Parse reads a target list from a CSV file with a name,coordinates header.
func Parse(filename string) ([]*Target, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open target list %q: %w", filename, err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads a target list from CSV and assigns every target a unique slug.
func Read(r io.Reader) ([]*Target, error) {
	var list []*Target
	if err := gocsv.Unmarshal(r, &list); err != nil {
		return nil, fmt.Errorf("read target list: %w", err)
	}

	Slugify(list)
	return list, nil
}

// Slugify names each target after its Name, or its coordinates when the name
// is blank. Repeats get -2, -3 and so on.
func Slugify(list []*Target) {
	seen := make(map[string]int)
	for _, t := range list {
		base := slug.Make(t.Name)
		if base == "" {
			base = slug.Make(t.Coordinates)
		}
		if base == "" {
			base = "target"
		}

		seen[base]++
		t.Slug = base
		if n := seen[base]; n > 1 {
			t.Slug = base + "-" + strconv.Itoa(n)
		}
	}
}

// Result is a resolved target.
type Result struct {
	Slug       string  `csv:"slug" yaml:"slug"`
	Name       string  `csv:"name" yaml:"name,omitempty"`
	Input      string  `csv:"input" yaml:"input"`
	Accepted   bool    `csv:"accepted" yaml:"accepted"`
	Shape      string  `csv:"shape" yaml:"shape"`
	RA         float64 `csv:"ra_deg" yaml:"ra_deg"`
	Dec        float64 `csv:"dec_deg" yaml:"dec_deg"`
	Colon      string  `csv:"colon" yaml:"colon,omitempty"`
	Letter     string  `csv:"letter" yaml:"letter,omitempty"`
	Space      string  `csv:"space" yaml:"space,omitempty"`
	DMS        string  `csv:"dms" yaml:"dms,omitempty"`
	HourDegree string  `csv:"hour_degree" yaml:"hour_degree,omitempty"`
	Symbol     string  `csv:"symbol" yaml:"symbol,omitempty"`
	Error      string  `csv:"error" yaml:"error,omitempty"`

	// Err is the structured rejection behind Error.
	Err error `csv:"-" yaml:"-"`
}

// Forms returns the rendered notations held by r.
func (r *Result) Forms() coords.Forms {
	return coords.Forms{
		Colon:      r.Colon,
		Letter:     r.Letter,
		Space:      r.Space,
		DMS:        r.DMS,
		HourDegree: r.HourDegree,
		Symbol:     r.Symbol,
	}
}

// Resolve parses and renders a single target.
func Resolve(t *Target) *Result {
	res := &Result{Slug: t.Slug, Name: t.Name, Input: t.Coordinates}

	p := coords.Parse(t.Coordinates)
	res.Shape = p.Shape.String()
	if !p.Accepted {
		res.Err = p.Err
		res.Error = p.Err.Error()
		return res
	}

	f, err := coords.Convert(p.RA, p.Dec)
	if err != nil {
		res.Err = err
		res.Error = err.Error()
		return res
	}

	res.Accepted = true
	res.RA, res.Dec = p.RA, p.Dec
	res.Colon, res.Letter, res.Space = f.Colon, f.Letter, f.Space
	res.DMS, res.HourDegree, res.Symbol = f.DMS, f.HourDegree, f.Symbol
	return res
}

// ResolveAll resolves every target in order and tallies the outcome.
func ResolveAll(list []*Target, counter *Counter) []*Result {
	results := make([]*Result, 0, len(list))
	for _, t := range list {
		r := Resolve(t)
		if r.Accepted {
			counter.Accept()
		} else {
			counter.Reject()
		}
		results = append(results, r)
	}
	return results
}

// Counter tallies resolved targets.
type Counter struct {
	AcceptedCount int
	RejectedCount int
}

func (c *Counter) Accept() {
	c.AcceptedCount++
}
func (c *Counter) Reject() {
	c.RejectedCount++
}

package coords

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is the input layout a parse was claimed by.
type Shape int

const (
	ShapeUnknown Shape = iota
	// 187.5+45.0
	ShapeSignedToken
	// 25.0d 36.0d
	ShapeDegreeLetterPair
	// 25.0 36.0
	ShapeDecimalPair
	// 187d30m00s +45d00m00s
	ShapeRADegrees
	// 12h30m00s +45d00m00s
	ShapeLetterPair
	// 12 30 45 00 or 12 30 00 45 00 00
	ShapeBareTokens
	// 12:30:00 +45:00:00
	ShapeColonPair
)

var shapeNames = map[Shape]string{
	ShapeUnknown:          "unknown",
	ShapeSignedToken:      "signed token",
	ShapeDegreeLetterPair: "degree letter pair",
	ShapeDecimalPair:      "decimal pair",
	ShapeRADegrees:        "ra degrees",
	ShapeLetterPair:       "letter pair",
	ShapeBareTokens:       "bare tokens",
	ShapeColonPair:        "colon pair",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Parsed is the outcome of Parse. RA and Dec are in degrees and are zero
// unless Accepted.
type Parsed struct {
	Accepted bool
	RA       float64
	Dec      float64

	// Shape is the first layout that claimed the input.
	Shape Shape
	// Err describes the rejection. It is an *Error.
	Err error
}

// Forms renders an accepted coordinate.
func (p Parsed) Forms() (Forms, error) {
	if !p.Accepted {
		return Forms{}, p.Err
	}
	return Convert(p.RA, p.Dec)
}

// symbols maps typographic notation onto the plain letters the rules expect.
var symbols = strings.NewReplacer(
	"−", "-",
	"ʰ", "h",
	"ᵐ", "m",
	"ˢ", "s",
	"°", "d",
	"′", "m",
	"″", "s",
)

// counts is the character histogram the shape rules are chosen by.
type counts struct {
	dot, colon  int
	h, m, s, d  int
	plus, minus int
}

type input struct {
	raw  string
	toks []string
	n    counts
}

func (in *input) set(toks []string) {
	in.toks = toks
	in.n = counts{}
	for _, t := range toks {
		for _, c := range t {
			switch c {
			case '.':
				in.n.dot++
			case ':':
				in.n.colon++
			case 'h':
				in.n.h++
			case 'm':
				in.n.m++
			case 's':
				in.n.s++
			case 'd':
				in.n.d++
			case '+':
				in.n.plus++
			case '-':
				in.n.minus++
			}
		}
	}
}

func (in *input) noUnits() bool {
	return in.n.colon == 0 && in.n.h == 0 && in.n.m == 0 && in.n.s == 0 && in.n.d == 0
}

// shapeRule either rewrites the tokens toward the colon form (normalize) or
// produces the final degrees (resolve). Exactly one of the two is set.
type shapeRule struct {
	shape     Shape
	match     func(in *input) bool
	normalize func(in *input) error
	resolve   func(in *input) (ra, dec float64, err error)
}

// rules are tried in order; a rule that matches and normalizes hands the
// rewritten tokens to the rules after it.
var rules = []shapeRule{
	{shape: ShapeSignedToken, match: isSignedToken, normalize: splitAtSign},
	{shape: ShapeDegreeLetterPair, match: isDegreeLetterPair, normalize: stripDegreeLetters},
	{shape: ShapeDecimalPair, match: isDecimalPair, resolve: resolveDecimalPair},
	{shape: ShapeRADegrees, match: isRADegrees, normalize: raDegreesToHours},
	{shape: ShapeLetterPair, match: isLetterPair, normalize: lettersToColons},
	{shape: ShapeBareTokens, match: isBareTokens, normalize: bareTokensToColons},
	{shape: ShapeColonPair, match: isColonPair, resolve: resolveColonPair},
}

// Parse reads a right ascension and declination pair from raw. It never
// panics; malformed input comes back with Accepted false and an *Error.
func Parse(raw string) Parsed {
	in := &input{raw: raw}
	in.set(strings.Fields(symbols.Replace(raw)))

	var res Parsed
	for _, r := range rules {
		if !r.match(in) {
			continue
		}
		if res.Shape == ShapeUnknown {
			res.Shape = r.shape
		}

		if r.resolve != nil {
			ra, dec, err := r.resolve(in)
			if err != nil {
				res.Err = err
				return res
			}
			res.Accepted, res.RA, res.Dec = true, ra, dec
			return res
		}

		if err := r.normalize(in); err != nil {
			res.Err = err
			return res
		}
	}

	res.Err = rejectFormat(raw, FieldInput, "no coordinate format matched")
	return res
}

func isSignedToken(in *input) bool {
	return len(in.toks) == 1 && (in.n.plus == 1 || in.n.minus == 1)
}

func splitAtSign(in *input) error {
	tok := in.toks[0]
	sign := "-"
	if in.n.plus == 1 {
		sign = "+"
	}
	i := strings.Index(tok, sign)
	in.set([]string{tok[:i], tok[i:]})
	return nil
}

func isDegreeLetterPair(in *input) bool {
	if len(in.toks) != 2 || in.n.dot > 2 || in.n.d != 2 {
		return false
	}
	if in.n.colon != 0 || in.n.h != 0 || in.n.m != 0 || in.n.s != 0 {
		return false
	}
	for _, t := range in.toks {
		if strings.Count(t, "d") != 1 || !strings.HasSuffix(t, "d") {
			return false
		}
	}
	return true
}

func stripDegreeLetters(in *input) error {
	in.set([]string{
		strings.TrimSuffix(in.toks[0], "d"),
		strings.TrimSuffix(in.toks[1], "d"),
	})
	return nil
}

func isDecimalPair(in *input) bool {
	return len(in.toks) == 2 && in.n.dot <= 2 && in.noUnits()
}

func resolveDecimalPair(in *input) (float64, float64, error) {
	ra, err := parseNumber(in.toks[0], FieldRA)
	if err != nil {
		return 0, 0, err
	}
	dec, err := parseNumber(in.toks[1], FieldDec)
	if err != nil {
		return 0, 0, err
	}

	if e := checkRange(FieldRA, ra, 0, 360, false); e != nil {
		return 0, 0, e
	}
	if e := checkRange(FieldDec, dec, -90, 90, false); e != nil {
		return 0, 0, e
	}
	return ra, dec, nil
}

func isRADegrees(in *input) bool {
	return len(in.toks) == 2 && in.n.colon == 0 && strings.Count(in.toks[0], "d") == 1
}

// raDegreesToHours rewrites a 187d30m00s right ascension as 12h30m00.000s.
func raDegreesToHours(in *input) error {
	tok := in.toks[0]
	head, rest, _ := strings.Cut(tok, "d")

	deg, err := parseNumber(head, FieldRA)
	if err != nil {
		return err
	}
	if strings.Count(rest, "m") == 1 {
		var min string
		min, rest, _ = strings.Cut(rest, "m")
		v, err := parseNumber(min, FieldRA)
		if err != nil {
			return err
		}
		deg += v / 60.0

		if strings.Count(rest, "s") == 1 {
			var sec string
			sec, rest, _ = strings.Cut(rest, "s")
			v, err := parseNumber(sec, FieldRA)
			if err != nil {
				return err
			}
			deg += v / 3600.0
		}
	}
	if rest != "" {
		return rejectFormat(tok, FieldRA, fmt.Sprintf("unexpected %q after the last unit", rest))
	}
	if e := checkRange(FieldRA, deg, 0, 360, false); e != nil {
		return e
	}

	h := ToSexagesimal(deg, Hours)
	in.set([]string{
		fmt.Sprintf("%02dh%02dm%06.3fs", h.Whole, h.Min, Truncate(h.Sec, 3)),
		in.toks[1],
	})
	return nil
}

func isLetterPair(in *input) bool {
	return len(in.toks) == 2 && in.n.colon == 0 && (in.n.h > 0 || in.n.m > 0 || in.n.s > 0) && in.n.d == 1
}

func lettersToColons(in *input) error {
	ra := replaceFirst(in.toks[0], "h", ":")
	ra = replaceFirst(ra, "m", ":")
	ra = replaceFirst(ra, "s", "")

	dec := replaceFirst(in.toks[1], "d", ":")
	dec = replaceFirst(dec, "m", ":")
	dec = replaceFirst(dec, "s", "")

	in.set([]string{ra, dec})
	return nil
}

func replaceFirst(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}

// unitMarks may trail a token in the four and six token layouts.
const unitMarks = "hmsd"

func isBareTokens(in *input) bool {
	if len(in.toks) != 4 && len(in.toks) != 6 {
		return false
	}
	if in.n.colon != 0 {
		return false
	}
	for _, t := range in.toks {
		t = strings.TrimRight(t, unitMarks)
		if t == "" || strings.ContainsAny(t, unitMarks) {
			return false
		}
	}
	return true
}

// bareTokensToColons regroups HH MM DD MM or HH MM SS DD MM SS into a colon
// pair. The whole and minute fields must be integers; seconds are truncated
// to three places so they never round up into the next minute.
func bareTokensToColons(in *input) error {
	toks := make([]string, len(in.toks))
	for i, t := range in.toks {
		toks[i] = strings.TrimRight(t, unitMarks)
	}

	per := len(toks) / 2
	group := func(fields []string, whole, min, sec Field) (string, error) {
		names := []Field{whole, min, sec}
		out := make([]string, 0, 3)
		for i, f := range fields {
			if i < 2 {
				if _, err := strconv.Atoi(f); err != nil {
					return "", rejectFormat(f, names[i], "want a whole number")
				}
				out = append(out, f)
				continue
			}
			v, err := parseNumber(f, names[i])
			if err != nil {
				return "", err
			}
			out = append(out, strconv.FormatFloat(Truncate(v, 3), 'f', 3, 64))
		}
		if len(out) == 2 {
			out = append(out, "")
		}
		return strings.Join(out, ":"), nil
	}

	ra, err := group(toks[:per], FieldRAHour, FieldRAMinute, FieldRASecond)
	if err != nil {
		return err
	}
	dec, err := group(toks[per:], FieldDecDegree, FieldDecMinute, FieldDecSecond)
	if err != nil {
		return err
	}

	in.set([]string{ra, dec})
	return nil
}

func isColonPair(in *input) bool {
	return len(in.toks) == 2 && in.n.colon >= 1
}

func resolveColonPair(in *input) (float64, float64, error) {
	raFields := strings.Split(in.toks[0], ":")
	decFields := strings.Split(in.toks[1], ":")
	if len(raFields) > 3 {
		return 0, 0, rejectFieldCount(in.toks[0], FieldRA, len(raFields))
	}
	if len(decFields) > 3 {
		return 0, 0, rejectFieldCount(in.toks[1], FieldDec, len(decFields))
	}

	hour, min, sec, err := sexagesimalFields(raFields, FieldRAHour, FieldRAMinute, FieldRASecond)
	if err != nil {
		return 0, 0, err
	}
	if e := checkRange(FieldRAHour, hour, 0, 24, false); e != nil {
		return 0, 0, e
	}
	if e := checkMinSec(min, sec, FieldRAMinute, FieldRASecond); e != nil {
		return 0, 0, e
	}

	deg, dmin, dsec, err := sexagesimalFields(decFields, FieldDecDegree, FieldDecMinute, FieldDecSecond)
	if err != nil {
		return 0, 0, err
	}
	if e := checkRange(FieldDecDegree, deg, -90, 90, false); e != nil {
		return 0, 0, e
	}
	if e := checkMinSec(dmin, dsec, FieldDecMinute, FieldDecSecond); e != nil {
		return 0, 0, e
	}

	ra := hour*HourToDeg + min*HourToDeg/60.0 + sec*HourToDeg/3600.0

	// The sign of the degree field, including -0, applies to the whole value.
	dec := deg + dmin/60.0 + dsec/3600.0
	if math.Signbit(deg) {
		dec = deg - dmin/60.0 - dsec/3600.0
	}

	if e := checkRange(FieldRA, ra, 0, 360, false); e != nil {
		return 0, 0, e
	}
	if e := checkRange(FieldDec, dec, -90, 90, false); e != nil {
		return 0, 0, e
	}
	return ra, dec, nil
}

func checkMinSec(min, sec float64, minField, secField Field) *Error {
	if e := checkRange(minField, min, 0, 60, true); e != nil {
		return e
	}
	return checkRange(secField, sec, 0, 60, true)
}

// sexagesimalFields reads up to three colon fields. Missing or empty fields
// are zero and seconds are truncated to three places.
func sexagesimalFields(fields []string, names ...Field) (whole, min, sec float64, err error) {
	vals := [3]float64{}
	for i, f := range fields {
		if f == "" {
			continue
		}
		if vals[i], err = parseNumber(f, names[i]); err != nil {
			return 0, 0, 0, err
		}
	}
	return vals[0], vals[1], Truncate(vals[2], 3), nil
}

func parseNumber(s string, field Field) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, rejectFormat(s, field, "not a finite number")
	}
	return v, nil
}

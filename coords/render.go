package coords

import (
	"fmt"
	"strings"

	"github.com/soniakeys/sexagesimal"
	"go.uber.org/multierr"
)

// Forms holds one coordinate written out in each supported notation.
type Forms struct {
	Colon      string // 12:30:00.000 +45:00:00.000
	Letter     string // 12h30m00.000s +45d00m00.000s
	Space      string // 12 30 00.000 +45 00 00.000
	DMS        string // 187d30m00.000s +45d00m00.000s
	HourDegree string // 12.50000000h +45.00000000d
	Symbol     string // 12ʰ30ᵐ00.000ˢ +45°00′00.000″
}

// Lines returns the five plain notations in display order. Symbol is left
// out; it is only carried in structured output.
func (f Forms) Lines() []string {
	return []string{f.Colon, f.Letter, f.Space, f.DMS, f.HourDegree}
}

// Convert renders ra and dec, both in degrees. It requires 0 <= ra < 360
// and -90 <= dec <= 90; otherwise the zero Forms is returned with one
// RangeViolation per bad value.
func Convert(ra, dec float64) (Forms, error) {
	var err error
	if e := checkRange(FieldRA, ra, 0, 360, true); e != nil {
		err = multierr.Append(err, e)
	}
	if e := checkRange(FieldDec, dec, -90, 90, false); e != nil {
		err = multierr.Append(err, e)
	}
	if err != nil {
		return Forms{}, err
	}

	raH := ToSexagesimal(ra, Hours).Round(3)
	raD := ToSexagesimal(ra, Degrees).Round(3)
	de := ToSexagesimal(dec, Degrees).Round(3)

	return Forms{
		Colon:      fmt.Sprintf("%02d:%02d:%06.3f %c%02d:%02d:%06.3f", raH.Whole, raH.Min, raH.Sec, de.Sign(), de.Whole, de.Min, de.Sec),
		Letter:     fmt.Sprintf("%02dh%02dm%06.3fs %c%02dd%02dm%06.3fs", raH.Whole, raH.Min, raH.Sec, de.Sign(), de.Whole, de.Min, de.Sec),
		Space:      fmt.Sprintf("%02d %02d %06.3f %c%02d %02d %06.3f", raH.Whole, raH.Min, raH.Sec, de.Sign(), de.Whole, de.Min, de.Sec),
		DMS:        fmt.Sprintf("%02dd%02dm%06.3fs %c%02dd%02dm%06.3fs", raD.Whole, raD.Min, raD.Sec, de.Sign(), de.Whole, de.Min, de.Sec),
		HourDegree: fmt.Sprintf("%11.8fh %+12.8fd", ra*DegToHour, dec),
		Symbol:     symbolForm(ra, dec),
	}, nil
}

// symbolForm writes the typographic notation with the same padding and
// explicit declination sign as the other forms.
func symbolForm(ra, dec float64) string {
	r := strings.TrimSpace(fmt.Sprintf("%02.3s", sexa.FmtRA(RA(ra))))
	d := strings.TrimSpace(fmt.Sprintf("%+02.3s", sexa.FmtAngle(Dec(dec))))
	return r + " " + d
}

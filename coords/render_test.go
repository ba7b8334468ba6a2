package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name     string
		ra, dec  float64
		expected Forms
		symbol   string
	}{
		{
			"scenario",
			187.5, 45.0,
			Forms{
				Colon:      "12:30:00.000 +45:00:00.000",
				Letter:     "12h30m00.000s +45d00m00.000s",
				Space:      "12 30 00.000 +45 00 00.000",
				DMS:        "187d30m00.000s +45d00m00.000s",
				HourDegree: "12.50000000h +45.00000000d",
			},
			"12ʰ30ᵐ00.000ˢ +45°00′00.000″",
		},
		{
			"negative under one degree",
			0, -0.5,
			Forms{
				Colon:      "00:00:00.000 -00:30:00.000",
				Letter:     "00h00m00.000s -00d30m00.000s",
				Space:      "00 00 00.000 -00 30 00.000",
				DMS:        "00d00m00.000s -00d30m00.000s",
				HourDegree: " 0.00000000h  -0.50000000d",
			},
			"00ʰ00ᵐ00.000ˢ -00°30′00.000″",
		},
		{
			"seconds",
			84.2911875, -80.4691197222,
			Forms{
				Colon:      "05:37:09.885 -80:28:08.831",
				Letter:     "05h37m09.885s -80d28m08.831s",
				Space:      "05 37 09.885 -80 28 08.831",
				DMS:        "84d17m28.275s -80d28m08.831s",
				HourDegree: " 5.61941250h -80.46911972d",
			},
			"",
		},
		{
			"south pole",
			0, -90,
			Forms{
				Colon:      "00:00:00.000 -90:00:00.000",
				Letter:     "00h00m00.000s -90d00m00.000s",
				Space:      "00 00 00.000 -90 00 00.000",
				DMS:        "00d00m00.000s -90d00m00.000s",
				HourDegree: " 0.00000000h -90.00000000d",
			},
			"00ʰ00ᵐ00.000ˢ -90°00′00.000″",
		},
		{
			"just under 360",
			359.999999999, 90,
			Forms{
				Colon:      "24:00:00.000 +90:00:00.000",
				Letter:     "24h00m00.000s +90d00m00.000s",
				Space:      "24 00 00.000 +90 00 00.000",
				DMS:        "360d00m00.000s +90d00m00.000s",
				HourDegree: "24.00000000h +90.00000000d",
			},
			"",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Convert(c.ra, c.dec)
			require.NoError(t, err)

			assert.NotEmpty(t, f.Symbol)
			if c.symbol != "" {
				assert.Equal(t, c.symbol, f.Symbol)
			}
			f.Symbol = ""
			assert.Equal(t, c.expected, f)
		})
	}
}

func TestConvertSymbol(t *testing.T) {
	f, err := Convert(187.5, -45.5)
	require.NoError(t, err)
	assert.Equal(t, "12ʰ30ᵐ00.000ˢ -45°30′00.000″", f.Symbol)

	p := Parse(f.Symbol)
	require.True(t, p.Accepted, "%v", p.Err)
	assert.InDelta(t, 187.5, p.RA, 1e-9)
	assert.InDelta(t, -45.5, p.Dec, 1e-9)
}

func TestConvertRejected(t *testing.T) {
	cases := []struct {
		name    string
		ra, dec float64
		fields  []Field
	}{
		{"ra 360", 360, 0, []Field{FieldRA}},
		{"ra negative", -0.1, 0, []Field{FieldRA}},
		{"dec above 90", 10, 90.0000001, []Field{FieldDec}},
		{"both", 400, -91, []Field{FieldRA, FieldDec}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Convert(c.ra, c.dec)
			require.Error(t, err)
			assert.Equal(t, Forms{}, f)

			errs := multierr.Errors(err)
			require.Len(t, errs, len(c.fields))
			for i, e := range errs {
				var ce *Error
				require.ErrorAs(t, e, &ce)
				assert.Equal(t, RangeViolation, ce.Kind)
				assert.Equal(t, c.fields[i], ce.Field)
			}
		})
	}
}

func TestFormsLines(t *testing.T) {
	f, err := Convert(187.5, 45.0)
	require.NoError(t, err)

	lines := f.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, f.Colon, lines[0])
	assert.Equal(t, f.HourDegree, lines[4])
	assert.NotContains(t, lines, f.Symbol)
}

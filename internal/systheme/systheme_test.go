package systheme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDetect_ProbeOrder(t *testing.T) {
	osDark := func(v bool, err error) func() (bool, error) {
		return func() (bool, error) { return v, err }
	}
	termDark := func(v, ok bool) func() (bool, bool) {
		return func() (bool, bool) { return v, ok }
	}
	errNoOS := errors.New("unsupported")

	tests := []struct {
		name string
		d    Detector
		want Reading
	}{
		{
			name: "env override wins",
			d: Detector{
				Getenv:   envMap(map[string]string{DarkBGEnv: "false", "COLORFGBG": "15;0"}),
				OSDark:   osDark(true, nil),
				TermDark: termDark(true, true),
			},
			want: Reading{Dark: false, Source: SourceEnv},
		},
		{
			name: "invalid env falls through to COLORFGBG",
			d: Detector{
				Getenv: envMap(map[string]string{DarkBGEnv: "maybe", "COLORFGBG": "0;15"}),
				OSDark: osDark(true, nil),
			},
			want: Reading{Dark: false, Source: SourceColorFGBG},
		},
		{
			name: "os appearance",
			d: Detector{
				Getenv:   envMap(nil),
				OSDark:   osDark(true, nil),
				TermDark: termDark(false, true),
			},
			want: Reading{Dark: true, Source: SourceOS},
		},
		{
			name: "os error falls back to terminal",
			d: Detector{
				Getenv:   envMap(nil),
				OSDark:   osDark(false, errNoOS),
				TermDark: termDark(false, true),
			},
			want: Reading{Dark: false, Source: SourceTerminal},
		},
		{
			name: "nothing conclusive assumes dark",
			d: Detector{
				Getenv:   envMap(nil),
				OSDark:   osDark(false, errNoOS),
				TermDark: termDark(false, false),
			},
			want: Reading{Dark: true, Source: SourceDefault},
		},
		{
			name: "nil probes",
			d:    Detector{Getenv: envMap(nil)},
			want: Reading{Dark: true, Source: SourceDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Detect())
		})
	}
}

func TestDetect_UsesProcessEnvByDefault(t *testing.T) {
	t.Setenv(DarkBGEnv, "1")
	d := Detector{}
	assert.Equal(t, Reading{Dark: true, Source: SourceEnv}, d.Detect())
}

func TestParseColorFGBG(t *testing.T) {
	tests := []struct {
		in       string
		wantDark bool
		wantOK   bool
	}{
		{"", false, false},
		{"15;0", true, true},
		{"0;15", false, true},
		{"15;default;0", true, true},
		{" 7;8 ", false, true},
		{"15;6", true, true},
		{"15;x", false, false},
	}
	for _, tt := range tests {
		dark, ok := ParseColorFGBG(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.wantDark, dark, "input %q", tt.in)
	}
}

func TestWatch_DelegatesToOSWatcher(t *testing.T) {
	d := Detector{}
	_, _, err := d.Watch(context.Background())
	assert.ErrorIs(t, err, ErrWatchUnsupported)

	events := make(chan bool, 1)
	events <- true
	d.OSWatch = func(context.Context) (<-chan bool, <-chan error, error) {
		return events, nil, nil
	}
	ch, _, err := d.Watch(context.Background())
	assert.NoError(t, err)
	assert.True(t, <-ch)
}

func TestReading_Fixed(t *testing.T) {
	assert.True(t, Reading{Source: SourceEnv}.Fixed())
	assert.True(t, Reading{Source: SourceColorFGBG}.Fixed())
	assert.False(t, Reading{Source: SourceOS}.Fixed())
	assert.False(t, Reading{Source: SourceDefault}.Fixed())
}

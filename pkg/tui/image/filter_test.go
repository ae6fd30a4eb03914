// ABOUTME: Tests for filter and color policy parsing, flag.Value, and YAML decoding
// ABOUTME: Also checks the imaging kernel mapping and termenv profile resolution

package image

import (
	"errors"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Filter
	}{
		{in: "linear", want: FilterLinear},
		{in: "nearest", want: FilterNearest},
		{in: "gaussian", want: FilterGaussian},
		{in: " Nearest ", want: FilterNearest},
		{in: "GAUSSIAN", want: FilterGaussian},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if err != nil {
			t.Errorf("ParseFilter(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFilter("lanczos"); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig for unknown filter, got %v", err)
	}
}

func TestFilter_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range FilterNames {
		var f Filter
		if err := f.Set(name); err != nil {
			t.Fatal(err)
		}
		if f.String() != name {
			t.Errorf("String() = %q, want %q", f.String(), name)
		}
	}
}

func TestFilter_Resample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f       Filter
		support float64
	}{
		{f: FilterNearest, support: imaging.NearestNeighbor.Support},
		{f: FilterLinear, support: imaging.Linear.Support},
		{f: FilterGaussian, support: imaging.Gaussian.Support},
	}
	for _, tt := range tests {
		if got := tt.f.resample().Support; got != tt.support {
			t.Errorf("%s support = %f, want %f", tt.f, got, tt.support)
		}
	}
}

func TestFilter_YAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Filter Filter `yaml:"filter"`
	}
	if err := yaml.Unmarshal([]byte("filter: gaussian\n"), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Filter != FilterGaussian {
		t.Errorf("Filter = %s, want gaussian", doc.Filter)
	}
	if err := yaml.Unmarshal([]byte("filter: box\n"), &doc); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestParseColorPolicy(t *testing.T) {
	t.Parallel()

	for i, name := range ColorNames {
		p, err := ParseColorPolicy(name)
		if err != nil {
			t.Fatal(err)
		}
		if p != ColorPolicy(i) || p.String() != name {
			t.Errorf("ParseColorPolicy(%q) = %s", name, p)
		}
	}
	if _, err := ParseColorPolicy("sometimes"); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestColorPolicy_Profile(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	pipe := w.Fd()

	tests := []struct {
		p    ColorPolicy
		want termenv.Profile
	}{
		{p: ColorAlways, want: termenv.TrueColor},
		{p: ColorNever, want: termenv.Ascii},
		{p: ColorAuto, want: termenv.Ascii},
	}
	for _, tt := range tests {
		if got := tt.p.Profile(pipe); got != tt.want {
			t.Errorf("%s.Profile(pipe) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

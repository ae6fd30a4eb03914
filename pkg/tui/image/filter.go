// ABOUTME: Resize kernel selection: linear (triangle), nearest, gaussian
// ABOUTME: Implements flag.Value and yaml.Unmarshaler; maps to imaging.ResampleFilter

package image

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"
)

// Filter identifies the resampling kernel used when resizing.
type Filter int

const (
	FilterLinear   Filter = iota // Triangle kernel; blends neighbouring colors
	FilterNearest                // Nearest pixel; keeps original colors
	FilterGaussian               // Gaussian kernel; blends neighbouring colors
)

// FilterNames lists the accepted names in display order.
var FilterNames = []string{"linear", "nearest", "gaussian"}

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "linear"
	case FilterNearest:
		return "nearest"
	case FilterGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter resolves a case-insensitive filter name.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return FilterLinear, nil
	case "nearest":
		return FilterNearest, nil
	case "gaussian":
		return FilterGaussian, nil
	}
	return 0, &ConfigError{
		Field:  "filter",
		Reason: fmt.Sprintf("%q is not one of %s", name, strings.Join(FilterNames, ", ")),
	}
}

// Set implements flag.Value.
func (f *Filter) Set(s string) error {
	v, err := ParseFilter(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Filter) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return f.Set(s)
}

func (f Filter) valid() bool {
	return f >= FilterLinear && f <= FilterGaussian
}

// resample returns the imaging kernel for f.
func (f Filter) resample() imaging.ResampleFilter {
	switch f {
	case FilterNearest:
		return imaging.NearestNeighbor
	case FilterGaussian:
		return imaging.Gaussian
	default:
		return imaging.Linear
	}
}

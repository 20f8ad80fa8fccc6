package camfx

import (
	"fmt"
	"strings"

	"github.com/gogpu/camfx/internal/resample"
)

// Selection is the operation the pipeline applies to each frame.
type Selection uint32

const (
	// SelectionGrayscale converts frames to gray in place.
	SelectionGrayscale Selection = iota

	// SelectionBoxBlur box-blurs frames into the scratch frame.
	SelectionBoxBlur

	// SelectionGaussianBlur Gaussian-blurs frames into the scratch frame.
	SelectionGaussianBlur

	// SelectionSepia sepia-tones frames in place.
	SelectionSepia

	// SelectionBilinear downsamples frames to the long-side target shape
	// with bilinear interpolation.
	SelectionBilinear

	// SelectionArea downsamples frames to the long-side target shape with
	// area averaging.
	SelectionArea

	selectionCount
)

var selectionNames = [selectionCount]string{
	SelectionGrayscale:    "grayscale",
	SelectionBoxBlur:      "blur",
	SelectionGaussianBlur: "gaussian",
	SelectionSepia:        "sepia",
	SelectionBilinear:     "bilinear",
	SelectionArea:         "area",
}

// String returns the selection name accepted by ParseSelection.
func (s Selection) String() string {
	if s.IsValid() {
		return selectionNames[s]
	}
	return fmt.Sprintf("Selection(%d)", uint32(s))
}

// IsValid reports whether s is a known selection.
func (s Selection) IsValid() bool {
	return s < selectionCount
}

// IsResample reports whether s changes the frame size.
func (s Selection) IsResample() bool {
	return s == SelectionBilinear || s == SelectionArea
}

// IsInPlace reports whether s modifies the incoming frame instead of
// writing the scratch frame.
func (s Selection) IsInPlace() bool {
	return s == SelectionGrayscale || s == SelectionSepia
}

// resampleMethod maps a resampling selection to its filter.
func (s Selection) resampleMethod() resample.Method {
	if s == SelectionArea {
		return resample.MethodArea
	}
	return resample.MethodBilinear
}

// ParseSelection parses a case-insensitive selection name. "box" and
// "gauss" are accepted as aliases.
func ParseSelection(name string) (Selection, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "box":
		return SelectionBoxBlur, nil
	case "gauss", "gaussian_blur":
		return SelectionGaussianBlur, nil
	case "gray":
		return SelectionGrayscale, nil
	}
	for i, s := range selectionNames {
		if s == n {
			return Selection(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSelection, name)
}

// Selections returns every known selection in menu order.
func Selections() []Selection {
	out := make([]Selection, selectionCount)
	for i := range out {
		out[i] = Selection(i)
	}
	return out
}

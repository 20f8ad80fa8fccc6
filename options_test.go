package camfx

import (
	"errors"
	"math"
	"testing"
	"time"
)

// oversizedKernel is one past the largest kernel size a pipeline can hold.
var oversizedKernel = func() int {
	k := int64(math.MaxInt32)
	return int(k + 1)
}()

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.selection != SelectionGrayscale {
		t.Errorf("selection = %v, want grayscale", o.selection)
	}
	if o.kernelSize != 5 || o.longSide != 256 {
		t.Errorf("kernelSize = %d longSide = %d, want 5 / 256", o.kernelSize, o.longSide)
	}
	if o.frameBudget != 33*time.Millisecond {
		t.Errorf("frameBudget = %v, want 33ms", o.frameBudget)
	}
	if err := o.validate(); err != nil {
		t.Errorf("validate() = %v", err)
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithSelection(SelectionArea),
		WithKernelSize(9),
		WithLongSide(320),
		WithFrameBudget(time.Second),
	} {
		opt(&o)
	}

	want := options{
		selection:   SelectionArea,
		kernelSize:  9,
		longSide:    320,
		frameBudget: time.Second,
	}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{"unknown selection", WithSelection(Selection(42)), ErrUnknownSelection},
		{"zero kernel", WithKernelSize(0), ErrInvalidKernelSize},
		{"negative kernel", WithKernelSize(-2), ErrInvalidKernelSize},
		{"oversized kernel", WithKernelSize(oversizedKernel), ErrInvalidKernelSize},
		{"zero long side", WithLongSide(0), ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if err := o.validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckKernelSize(t *testing.T) {
	tests := []struct {
		k    int
		want bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{5, true},
		{math.MaxInt32, true},
		{oversizedKernel, false},
	}
	for _, tt := range tests {
		if err := checkKernelSize(tt.k); (err == nil) != tt.want {
			t.Errorf("checkKernelSize(%d) = %v, want ok=%v", tt.k, err, tt.want)
		}
	}
}

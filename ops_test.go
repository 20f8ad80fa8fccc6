package camfx

import (
	"bytes"
	"errors"
	"testing"
)

func TestOperationsRejectAliasing(t *testing.T) {
	f := newTestFrame(t, 8, 8)

	tests := []struct {
		name string
		op   func() error
	}{
		{"BoxBlur", func() error { return BoxBlur(f, f, 5) }},
		{"GaussianBlur", func() error { return GaussianBlur(f, f, 5) }},
		{"ResizeBilinear", func() error { return ResizeBilinear(f, f) }},
		{"ResizeArea", func() error { return ResizeArea(f, f) }},
	}
	for _, tt := range tests {
		if err := tt.op(); !errors.Is(err, ErrAliasedBuffers) {
			t.Errorf("%s(f, f) = %v, want ErrAliasedBuffers", tt.name, err)
		}
	}
}

func TestOperationsKernelSize(t *testing.T) {
	src := newTestFrame(t, 8, 8)
	dst, err := NewFrameBuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	if err := BoxBlur(src, dst, 0); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("BoxBlur(k=0) = %v, want ErrInvalidKernelSize", err)
	}
	if err := GaussianBlur(src, dst, -1); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("GaussianBlur(k=-1) = %v, want ErrInvalidKernelSize", err)
	}
}

func TestComputeTargetShapeExported(t *testing.T) {
	tests := []struct {
		h, w int
		want TargetShape
	}{
		{1080, 1920, TargetShape{Height: 144, Width: 256}},
		{1920, 1080, TargetShape{Height: 256, Width: 144}},
	}
	for _, tt := range tests {
		got, err := ComputeTargetShape(256, tt.h, tt.w)
		if err != nil {
			t.Fatalf("ComputeTargetShape(256, %d, %d): %v", tt.h, tt.w, err)
		}
		if got != tt.want {
			t.Errorf("ComputeTargetShape(256, %d, %d) = %v, want %v", tt.h, tt.w, got, tt.want)
		}
	}

	if _, err := ComputeTargetShape(256, 0, 1080); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero height error = %v, want ErrInvalidDimensions", err)
	}
}

func TestGrayscaleAndSepiaExported(t *testing.T) {
	f := newTestFrame(t, 5, 5)
	if err := Grayscale(f); err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	if px := pixel(f, 2, 3); px[0] != px[1] || px[1] != px[2] {
		t.Errorf("pixel after Grayscale = %v, want R==G==B", px)
	}

	if err := Sepia(f); err != nil {
		t.Fatalf("Sepia: %v", err)
	}
	if err := Sepia(nil); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Sepia(nil) = %v, want ErrInvalidBuffer", err)
	}
}

func TestFromRawSharesMemory(t *testing.T) {
	data := make([]byte, 3*2*BytesPerPixel+8)
	f, err := FromRaw(data, 3, 2, 3*BytesPerPixel+4)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if err := f.SetRGBA(0, 1, 1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[16:20], []byte{1, 2, 3, 4}) {
		t.Errorf("raw bytes = %v, want [1 2 3 4]", data[16:20])
	}

	if _, err := FromRaw(data[:10], 3, 2, 16); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("short data error = %v, want ErrInvalidBuffer", err)
	}
}

package resample

import (
	"errors"
	"testing"

	"github.com/gogpu/camfx/internal/image"
)

func TestBilinearIdentity(t *testing.T) {
	src := newGradient(t, 13, 9, 7, 11)
	dst := newFrame(t, 13, 9)

	if err := Bilinear(src, dst); err != nil {
		t.Fatalf("Bilinear: %v", err)
	}
	if d := maxChannelDiff(src, dst); d != 0 {
		t.Errorf("same-size resize changed pixels by %d", d)
	}
}

func TestBilinearUpscaleLinear(t *testing.T) {
	// 0, 50, 100, 150, 200 stretched to 9 pixels lands on exact midpoints.
	src := newFrame(t, 5, 1)
	for x := 0; x < 5; x++ {
		_ = src.SetRGBA(x, 0, uint8(50*x), 0, 0, uint8(255-50*x))
	}
	dst := newFrame(t, 9, 1)

	if err := Bilinear(src, dst); err != nil {
		t.Fatalf("Bilinear: %v", err)
	}
	for x := 0; x < 9; x++ {
		r, _, _, a := dst.GetRGBA(x, 0)
		if r != uint8(25*x) {
			t.Errorf("R(%d) = %d, want %d", x, r, 25*x)
		}
		if a != uint8(255-25*x) {
			t.Errorf("A(%d) = %d, want %d", x, a, 255-25*x)
		}
	}
}

func TestBilinearCornersAligned(t *testing.T) {
	src := newGradient(t, 40, 30, 3, 5)
	dst := newFrame(t, 7, 5)

	if err := Bilinear(src, dst); err != nil {
		t.Fatalf("Bilinear: %v", err)
	}

	corners := [][4]int{
		{0, 0, 0, 0},
		{6, 0, 39, 0},
		{0, 4, 0, 29},
		{6, 4, 39, 29},
	}
	for _, c := range corners {
		dr, dg, db, da := dst.GetRGBA(c[0], c[1])
		sr, sg, sb, sa := src.GetRGBA(c[2], c[3])
		if dr != sr || dg != sg || db != sb || da != sa {
			t.Errorf("dst(%d,%d) = %d,%d,%d,%d, want src(%d,%d) = %d,%d,%d,%d",
				c[0], c[1], dr, dg, db, da, c[2], c[3], sr, sg, sb, sa)
		}
	}
}

func TestBilinearSinglePixelDestination(t *testing.T) {
	src := newGradient(t, 8, 8, 20, 20)
	_ = src.SetRGBA(0, 0, 9, 8, 7, 6)
	dst := newFrame(t, 1, 1)

	if err := Bilinear(src, dst); err != nil {
		t.Fatalf("Bilinear: %v", err)
	}
	r, g, b, a := dst.GetRGBA(0, 0)
	if r != 9 || g != 8 || b != 7 || a != 6 {
		t.Errorf("1x1 = %d,%d,%d,%d, want source origin 9,8,7,6", r, g, b, a)
	}
}

func TestBilinearUniform(t *testing.T) {
	src := newFrame(t, 31, 17)
	src.Fill(12, 200, 99, 140)

	for _, size := range [][2]int{{5, 3}, {62, 34}, {1, 17}, {31, 1}} {
		dst := newFrame(t, size[0], size[1])
		if err := Bilinear(src, dst); err != nil {
			t.Fatalf("Bilinear to %v: %v", size, err)
		}
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				r, g, b, a := dst.GetRGBA(x, y)
				if r != 12 || g != 200 || b != 99 || a != 140 {
					t.Fatalf("%v (%d,%d) = %d,%d,%d,%d", size, x, y, r, g, b, a)
				}
			}
		}
	}
}

func TestBilinearPaddedBuffers(t *testing.T) {
	src := newGradient(t, 20, 10, 9, 17)
	padded, _ := image.NewFrameBufferWithStride(20, 10, 20*4+16)
	_ = padded.CopyFrom(src)

	want := newFrame(t, 11, 6)
	got, _ := image.NewFrameBufferWithStride(11, 6, 11*4+4)

	if err := Bilinear(src, want); err != nil {
		t.Fatal(err)
	}
	if err := Bilinear(padded, got); err != nil {
		t.Fatal(err)
	}
	if d := maxChannelDiff(want, got); d != 0 {
		t.Errorf("padded strides changed the result by %d", d)
	}
}

func TestResizeErrors(t *testing.T) {
	a := newFrame(t, 8, 8)
	b := newFrame(t, 4, 4)
	empty := &image.FrameBuffer{}
	view, _ := image.FromRaw(a.Data()[:4*4*4], 4, 4, 16)

	tests := []struct {
		name     string
		src, dst *image.FrameBuffer
		wantErr  error
	}{
		{"same buffer", a, a, image.ErrAliasedBuffers},
		{"shared memory", a, view, image.ErrAliasedBuffers},
		{"empty source", empty, b, image.ErrInvalidDimensions},
		{"empty destination", a, empty, image.ErrInvalidDimensions},
		{"nil source", nil, b, image.ErrInvalidBuffer},
		{"nil destination", a, nil, image.ErrInvalidBuffer},
	}

	for _, m := range []Method{MethodBilinear, MethodArea} {
		for _, tt := range tests {
			t.Run(m.String()+"/"+tt.name, func(t *testing.T) {
				if err := Resize(tt.src, tt.dst, m); !errors.Is(err, tt.wantErr) {
					t.Errorf("Resize() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"bilinear", MethodBilinear},
		{"Bilinear", MethodBilinear},
		{"AREA", MethodArea},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if back, _ := ParseMethod(got.String()); back != got {
			t.Errorf("ParseMethod(%q.String()) = %v", got, back)
		}
	}
	if _, err := ParseMethod("lanczos"); err == nil {
		t.Error("ParseMethod(lanczos) should fail")
	}
	if got := Method(9).String(); got != "Unknown" {
		t.Errorf("Method(9).String() = %q", got)
	}
	if err := Resize(newFrame(t, 2, 2), newFrame(t, 1, 1), Method(9)); err == nil {
		t.Error("Resize with unknown method should fail")
	}
}

func BenchmarkBilinear1080pTo256(b *testing.B) {
	src := newGradient(b, 1920, 1080, 1, 1)
	dst := newFrame(b, 256, 144)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Bilinear(src, dst)
	}
}

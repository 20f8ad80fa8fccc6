package filter

import (
	"errors"
	"math"
	"testing"
)

func TestGaussianKernelInvalidSize(t *testing.T) {
	for _, k := range []int{0, -1, -5} {
		if _, err := GaussianKernel(k); !errors.Is(err, ErrInvalidKernelSize) {
			t.Errorf("GaussianKernel(%d) error = %v, want ErrInvalidKernelSize", k, err)
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5, 10, 20} {
		kernel, err := GaussianKernel(k)
		if err != nil {
			t.Fatalf("GaussianKernel(%d): %v", k, err)
		}
		if !kernel.Normalized {
			t.Errorf("GaussianKernel(%d) not marked normalized", k)
		}
		if sum := kernel.Sum(); math.Abs(sum-1.0) > 1e-4 {
			t.Errorf("GaussianKernel(%d) sum = %v, want 1±1e-4", k, sum)
		}
	}
}

func TestCachedKernelNormalized(t *testing.T) {
	for k := 1; k <= 30; k++ {
		kernel, err := CachedGaussianKernel(k)
		if err != nil {
			t.Fatalf("CachedGaussianKernel(%d): %v", k, err)
		}
		if kernel.Normalized && math.Abs(kernel.Sum()-1.0) > 1e-4 {
			t.Errorf("kernel %d marked normalized but sums to %v", k, kernel.Sum())
		}
		if !kernel.Normalized {
			t.Errorf("CachedGaussianKernel(%d) not marked normalized", k)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel, _ := GaussianKernel(5)
	n := kernel.Size()

	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if kernel.Weights[i] != kernel.Weights[j] {
			t.Errorf("kernel[%d] = %v != kernel[%d] = %v (asymmetric)", i, kernel.Weights[i], j, kernel.Weights[j])
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		kernelSize int
		wantSize   int
	}{
		{1, 3},
		{2, 5},
		{5, 11},
		{10, 21},
	}

	for _, tt := range tests {
		kernel, _ := GaussianKernel(tt.kernelSize)
		if kernel.Size() != tt.wantSize || kernel.Radius != tt.kernelSize {
			t.Errorf("GaussianKernel(%d) size = %d radius = %d, want %d / %d",
				tt.kernelSize, kernel.Size(), kernel.Radius, tt.wantSize, tt.kernelSize)
		}
	}
}

func TestGaussianKernelPeakAtCenter(t *testing.T) {
	kernel, _ := GaussianKernel(5)
	center := kernel.Radius

	for i, w := range kernel.Weights {
		if i != center && w >= kernel.Weights[center] {
			t.Errorf("kernel[%d] = %v >= center %v", i, w, kernel.Weights[center])
		}
	}
	for i := 1; i <= center; i++ {
		if kernel.Weights[i] <= kernel.Weights[i-1] {
			t.Errorf("kernel not increasing towards center at %d", i)
		}
	}
}

func TestGaussianSigma(t *testing.T) {
	tests := []struct {
		kernelSize int
		want       float64
	}{
		{1, 0.5},
		{2, 2.0 / 3},
		{3, 1},
		{5, 5.0 / 3},
		{9, 3},
	}

	for _, tt := range tests {
		if got := GaussianSigma(tt.kernelSize); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GaussianSigma(%d) = %v, want %v", tt.kernelSize, got, tt.want)
		}
	}
}

func TestKernelCache(t *testing.T) {
	cache := newKernelCache(4)

	k1, err := cache.get(5)
	if err != nil {
		t.Fatalf("get(5): %v", err)
	}
	k2, _ := cache.get(5)
	if &k1.Weights[0] != &k2.Weights[0] {
		t.Error("second get(5) should return the cached weights")
	}

	if _, err := cache.get(0); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("get(0) error = %v, want ErrInvalidKernelSize", err)
	}

	for k := 1; k <= 10; k++ {
		_, _ = cache.get(k)
	}
	if n := cache.len(); n > 4 {
		t.Errorf("cache len = %d, want <= 4", n)
	}
}

func BenchmarkGaussianKernel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GaussianKernel(5)
	}
}

func BenchmarkCachedGaussianKernel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = CachedGaussianKernel(5)
	}
}

package filter

import (
	"fmt"
	"math"
	"sync"
)

// Kernel is a symmetric 1D convolution kernel of 2*Radius+1 taps.
type Kernel struct {
	// Radius is the number of taps on each side of the center tap.
	Radius int

	// Weights holds the 2*Radius+1 tap weights, left to right.
	Weights []float32

	// Normalized reports that Weights sum to 1 within float32 rounding.
	Normalized bool
}

// Size returns the number of taps.
func (k Kernel) Size() int {
	return len(k.Weights)
}

// Sum returns the sum of all weights in float64.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k.Weights {
		s += float64(w)
	}
	return s
}

// GaussianSigma returns the standard deviation used for a Gaussian blur of
// the given kernel size: kernelSize/3, but never below 0.5.
func GaussianSigma(kernelSize int) float64 {
	return math.Max(float64(kernelSize)/3, 0.5)
}

// GaussianKernel generates a normalized Gaussian kernel for the given
// kernel size. The kernel spans kernelSize taps on each side of the center,
// so a kernel size of 5 yields 11 taps with sigma 5/3.
func GaussianKernel(kernelSize int) (Kernel, error) {
	if kernelSize < 1 {
		return Kernel{}, fmt.Errorf("%w: got %d", ErrInvalidKernelSize, kernelSize)
	}

	sigma := GaussianSigma(kernelSize)
	size := kernelSize*2 + 1
	weights := make([]float32, size)

	// exp(-x²/(2σ²)); the 1/(σ√(2π)) factor cancels in normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	vals := make([]float64, size)
	for i := 0; i < size; i++ {
		x := float64(i - kernelSize)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		weights[i] = float32(v / sum)
	}

	return Kernel{Radius: kernelSize, Weights: weights, Normalized: true}, nil
}

// kernelCache caches computed Gaussian kernels keyed by kernel size.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int]Kernel
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int]Kernel),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(kernelSize int) (Kernel, error) {
	c.mu.RLock()
	if k, ok := c.cache[kernelSize]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := GaussianKernel(kernelSize)
	if err != nil {
		return Kernel{}, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Evict half; kernel sizes in practice change rarely.
		count := 0
		for key := range c.cache {
			delete(c.cache, key)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[kernelSize] = k
	c.mu.Unlock()

	return k, nil
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a cached Gaussian kernel for the kernel size.
// The returned weights are shared and must not be modified.
func CachedGaussianKernel(kernelSize int) (Kernel, error) {
	return defaultKernelCache.get(kernelSize)
}

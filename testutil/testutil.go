package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// FillUniform fills vec with uniform values in [0, 1).
func (r *RNG) FillUniform(vec []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vec {
		vec[i] = r.rand.Float32()
	}
}

// FillGaussian fills vec with standard normal values.
func (r *RNG) FillGaussian(vec []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vec {
		vec[i] = float32(r.rand.NormFloat64())
	}
}

// ClusteredData generates k well-separated synthetic clusters with perCluster
// points each, flattened row-major. Cluster c is centered at coordinate c on
// every axis with Gaussian noise of the given spread. Returns the data and
// the true label of every point, in generation order.
func ClusteredData(r *RNG, k, perCluster, dim int, spread float64) ([]float32, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, 0, k*perCluster*dim)
	labels := make([]int, 0, k*perCluster)

	for c := 0; c < k; c++ {
		for p := 0; p < perCluster; p++ {
			for d := 0; d < dim; d++ {
				data = append(data, float32(float64(c)+r.rand.NormFloat64()*spread))
			}
			labels = append(labels, c)
		}
	}
	return data, labels
}

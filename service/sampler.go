package service

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/Gthulhu/scenario-controller/domain"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws scalars and random selections from one seeded source.
// A Sampler is not safe for concurrent use; every generator loop owns its own.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample draws one value from spec. Unknown distribution types yield min.
func (s *Sampler) Sample(ctx context.Context, spec domain.DistributionSpec) float64 {
	if spec.Value != nil {
		return *spec.Value
	}

	minVal, maxVal := spec.MinOrDefault(), spec.MaxOrDefault()
	switch spec.TypeOrDefault() {
	case domain.DistributionUniform:
		if maxVal <= minVal {
			return minVal
		}
		return distuv.Uniform{Min: minVal, Max: maxVal, Src: s.rng}.Rand()
	case domain.DistributionNormal:
		sigma := spec.StddevOrDefault()
		if sigma <= 0 {
			return clamp(spec.MeanOrDefault(), minVal, maxVal)
		}
		v := distuv.Normal{Mu: spec.MeanOrDefault(), Sigma: sigma, Src: s.rng}.Rand()
		return clamp(v, minVal, maxVal)
	case domain.DistributionExponential:
		mean := spec.MeanOrDefault()
		if mean <= 0 {
			return minVal
		}
		v := distuv.Exponential{Rate: 1.0 / mean, Src: s.rng}.Rand()
		return clamp(v, minVal, maxVal)
	case domain.DistributionPoisson:
		// Only the upper bound applies to poisson draws.
		lambda := spec.LambdaOrDefault()
		if lambda <= 0 {
			return math.Min(maxVal, 0)
		}
		v := distuv.Poisson{Lambda: lambda, Src: s.rng}.Rand()
		return math.Min(maxVal, v)
	}

	logger.Logger(ctx).Warn().Msgf("unknown distribution type %q, using min %v", spec.Distribution, minVal)
	return minVal
}

// SampleCount draws from spec and truncates to a non-negative integer
func (s *Sampler) SampleCount(ctx context.Context, spec domain.DistributionSpec) int {
	n := int(s.Sample(ctx, spec))
	if n < 0 {
		return 0
	}
	return n
}

// Choice picks one element uniformly at random. items must not be empty.
func (s *Sampler) Choice(items []string) string {
	return items[s.rng.IntN(len(items))]
}

// SampleWithoutReplacement returns k distinct elements of items in random order.
// When k >= len(items) a shuffled copy of all items is returned.
func (s *Sampler) SampleWithoutReplacement(items []string, k int) []string {
	if k <= 0 {
		return nil
	}
	if k > len(items) {
		k = len(items)
	}
	picked := make([]string, len(items))
	copy(picked, items)
	// partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:k]
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

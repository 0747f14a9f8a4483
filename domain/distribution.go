package domain

type DistributionType string

const (
	DistributionUniform     DistributionType = "uniform"
	DistributionNormal      DistributionType = "normal"
	DistributionExponential DistributionType = "exponential"
	DistributionPoisson     DistributionType = "poisson"
)

// DistributionSpec declares how to draw one scalar. When Value is set it is
// returned verbatim, otherwise Distribution selects the sampler.
type DistributionSpec struct {
	Value        *float64         `json:"value,omitempty"`
	Distribution DistributionType `json:"distribution,omitempty"`
	Min          *float64         `json:"min,omitempty"`
	Max          *float64         `json:"max,omitempty"`
	Mean         *float64         `json:"mean,omitempty"`
	Stddev       *float64         `json:"stddev,omitempty"`
	Lambda       *float64         `json:"lambda,omitempty"`
}

// FixedValue returns a spec that always yields v
func FixedValue(v float64) DistributionSpec {
	return DistributionSpec{Value: &v}
}

// IsZero reports whether nothing was configured
func (d DistributionSpec) IsZero() bool {
	return d.Value == nil && d.Distribution == "" && d.Min == nil && d.Max == nil &&
		d.Mean == nil && d.Stddev == nil && d.Lambda == nil
}

func (d DistributionSpec) TypeOrDefault() DistributionType {
	if d.Distribution == "" {
		return DistributionUniform
	}
	return d.Distribution
}

func (d DistributionSpec) MinOrDefault() float64 {
	return floatOr(d.Min, 0)
}

func (d DistributionSpec) MaxOrDefault() float64 {
	return floatOr(d.Max, 1)
}

// MeanOrDefault defaults to the midpoint of [min, max]
func (d DistributionSpec) MeanOrDefault() float64 {
	return floatOr(d.Mean, (d.MinOrDefault()+d.MaxOrDefault())/2)
}

// StddevOrDefault defaults to a sixth of the range
func (d DistributionSpec) StddevOrDefault() float64 {
	return floatOr(d.Stddev, (d.MaxOrDefault()-d.MinOrDefault())/6)
}

func (d DistributionSpec) LambdaOrDefault() float64 {
	return floatOr(d.Lambda, 1.0)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

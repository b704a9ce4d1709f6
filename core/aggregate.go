// Package core has the talent match-rate scoring pipeline: baseline
// derivation, per-candidate aggregation, ranking and analytics.
package core

import (
	"fmt"
	"math"

	"github.com/talentco/talentmatch/schema"
)

// AggregateVariable computes the match rate between a candidate score and a
// baseline reference score. The rate expresses relative closeness:
//
//	rate = 100 - min(100, |candidate-baseline| / baseline * 100)
//
// Equal scores (including both zero) rate exactly 100. A zero baseline with
// a nonzero candidate score has an unbounded deviation ratio, so the cap
// applies and the rate is 0. Scores outside [0,100] fail with
// schema.ErrInvalidScore.
func AggregateVariable(candidate, baseline float64) (float64, error) {
	if candidate < 0 || candidate > 100 {
		return 0, fmt.Errorf("candidate score %v: %w", candidate, schema.ErrInvalidScore)
	}
	if baseline < 0 || baseline > 100 {
		return 0, fmt.Errorf("baseline score %v: %w", baseline, schema.ErrInvalidScore)
	}
	if candidate == baseline {
		return 100, nil
	}
	if baseline == 0 {
		return 0, nil
	}
	deviation := math.Abs(candidate-baseline) / baseline * 100
	return 100 - math.Min(100, deviation), nil
}

// AggregateCluster rolls per-variable match rates up to a single cluster
// rate. With nil or empty weights it is the unweighted arithmetic mean;
// otherwise a weighted mean where missing entries default to weight 1 and
// the total is normalized by the sum of weights actually present.
// Aggregating zero rates fails with schema.ErrEmptyAggregation.
func AggregateCluster(rates map[string]float64, weights map[string]float64) (float64, error) {
	return weightedMean(rates, weights)
}

// AggregateFinal rolls cluster match rates up to the overall match rate.
// Same weighting contract as AggregateCluster.
func AggregateFinal(clusterRates map[string]float64, weights map[string]float64) (float64, error) {
	return weightedMean(clusterRates, weights)
}

// weightedMean iterates keys in sorted order so that floating point
// accumulation is identical across runs.
func weightedMean(rates map[string]float64, weights map[string]float64) (float64, error) {
	if len(rates) == 0 {
		return 0, schema.ErrEmptyAggregation
	}

	var sum, weightSum float64
	for _, key := range schema.SortedRateKeys(rates) {
		w := 1.0
		if weights != nil {
			if custom, ok := weights[key]; ok {
				w = custom
			}
		}
		if w < 0 {
			return 0, fmt.Errorf("weight for %q is %v: %w", key, w, schema.ErrInvalidWeight)
		}
		sum += w * rates[key]
		weightSum += w
	}
	if weightSum == 0 {
		return 0, fmt.Errorf("all weights are zero: %w", schema.ErrEmptyAggregation)
	}
	return sum / weightSum, nil
}

package decisiontrees

import (
	"context"
	"math"

	"github.com/jayelm/decisiontrees/dataset"
)

// Error is the type of the constant errors of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrEmptySubset is returned when the entropy of an empty subset is
// requested. The quantity is undefined and induction guards every
// call site, so hitting it from the outside signals a caller bug.
const ErrEmptySubset = Error("cannot compute entropy of an empty subset")

/*
Entropy returns the Shannon entropy, in bits, of the distribution of
the given attribute's values within the subset.

A subset where every record shares one value has entropy 0; the
maximum for k distinct values is log2(k). Zero-probability terms
contribute nothing.
*/
func Entropy(ctx context.Context, subset []dataset.Record, attribute string) (float64, error) {
	if len(subset) == 0 {
		return 0, ErrEmptySubset
	}
	counts, err := dataset.CountValues(ctx, subset, attribute)
	if err != nil {
		return 0, err
	}
	total := float64(counts.Total())
	var entropy float64
	for _, v := range counts.Values() {
		p := float64(counts.Count(v)) / total
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}

/*
SplitScorer scores how well splitting a subset on an attribute
separates it with respect to the dependent attribute. Induction
splits on the unused attribute with the maximum score.
*/
type SplitScorer interface {
	Score(ctx context.Context, ds *dataset.Dataset, subset []dataset.Record, attribute, dependent string) (float64, error)
}

/*
SplitScorerFunc wraps a function with the Score method signature to
implement the SplitScorer interface.
*/
type SplitScorerFunc func(ctx context.Context, ds *dataset.Dataset, subset []dataset.Record, attribute, dependent string) (float64, error)

// Score invokes the wrapped function.
func (f SplitScorerFunc) Score(ctx context.Context, ds *dataset.Dataset, subset []dataset.Record, attribute, dependent string) (float64, error) {
	return f(ctx, ds, subset, attribute, dependent)
}

/*
InformationGain returns the reduction in entropy of the dependent
attribute achieved by partitioning the subset on the given attribute:

	gain = H(S) - sum over v of |S_v|/|S| * H(S_v)

where v ranges over the attribute's full dataset domain and S_v is
the subset filtered to records with attribute == v. Values absent
from the subset contribute a zero-weight term. The result is never
negative and is 0 when every partition preserves the dependent-value
distribution of the subset.
*/
func InformationGain(ctx context.Context, ds *dataset.Dataset, subset []dataset.Record, attribute, dependent string) (float64, error) {
	gain, err := Entropy(ctx, subset, dependent)
	if err != nil {
		return 0, err
	}
	total := float64(len(subset))
	for _, v := range ds.Domain(attribute) {
		filtered, err := dataset.Filter(ctx, subset, attribute, v)
		if err != nil {
			return 0, err
		}
		if len(filtered) == 0 {
			continue
		}
		e, err := Entropy(ctx, filtered, dependent)
		if err != nil {
			return 0, err
		}
		gain -= e * float64(len(filtered)) / total
	}
	return gain, nil
}

/*
InformationGainScorer returns the SplitScorer used by default: plain
information gain.
*/
func InformationGainScorer() SplitScorer {
	return SplitScorerFunc(InformationGain)
}

/*
PurityScorer returns a SplitScorer that scores an attribute by the
fraction of the subset's records falling into value groups that
classify the dependent attribute perfectly, that is, groups holding a
single dependent value. The score ranges from 0 (no group is pure) to
1 (every group is pure).
*/
func PurityScorer() SplitScorer {
	return SplitScorerFunc(func(ctx context.Context, ds *dataset.Dataset, subset []dataset.Record, attribute, dependent string) (float64, error) {
		if len(subset) == 0 {
			return 0, ErrEmptySubset
		}
		var perfect int
		for _, v := range ds.Domain(attribute) {
			filtered, err := dataset.Filter(ctx, subset, attribute, v)
			if err != nil {
				return 0, err
			}
			if len(filtered) == 0 {
				continue
			}
			counts, err := dataset.CountValues(ctx, filtered, dependent)
			if err != nil {
				return 0, err
			}
			if counts.Distinct() == 1 {
				perfect += len(filtered)
			}
		}
		return float64(perfect) / float64(len(subset)), nil
	})
}

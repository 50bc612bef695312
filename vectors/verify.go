package vectors

import (
	"context"
	"fmt"
	"time"
)

// Failure describes one vector that did not reproduce.
type Failure struct {
	Index  int
	Vector Vector
	Got    string // output produced by this implementation, empty on error
	Err    error  // error produced instead of an output
}

// Report is the outcome of a Verify run.
type Report struct {
	Total    int
	Failures []Failure
}

// Passed returns the number of vectors that reproduced.
func (r *Report) Passed() int {
	return r.Total - len(r.Failures)
}

// OK reports whether every vector reproduced.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Verify masks every vector input and compares the result with the recorded
// output. Mismatches are collected in the report; the returned error is
// non-nil when set is nil or ctx ends before all vectors are checked.
func Verify(ctx context.Context, set *Set) (*Report, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil set", ErrInvalidVector)
	}
	start := time.Now()
	emitVerifyStart(ctx, len(set.Vectors))

	report := &Report{}
	var err error
	for i, v := range set.Vectors {
		if err = ctx.Err(); err != nil {
			break
		}
		report.Total++

		if verr := v.validate(); verr != nil {
			report.Failures = append(report.Failures, Failure{Index: i, Vector: v, Err: verr})
			emitVectorMismatch(ctx, i, v)
			continue
		}

		got, merr := v.run()
		if merr != nil || got != v.Output {
			report.Failures = append(report.Failures, Failure{Index: i, Vector: v, Got: got, Err: merr})
			emitVectorMismatch(ctx, i, v)
		}
	}

	emitVerifyComplete(ctx, report.Total, len(report.Failures), time.Since(start), err)
	return report, err
}

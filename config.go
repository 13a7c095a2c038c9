// Package alns - parameter loading.
//
// Experiment parameters live in small YAML documents (YAML is a superset
// of JSON, so plain JSON files load unchanged):
//
//	scores:
//	  score_decay: 0.9
//	  new_best_multiplier: 10.0
//	  new_improving_multiplier: 4.0
//	  new_accepted_multiplier: 1.5
//	acceptance:
//	  main_termination_criterion: iterations   # or: time
//	  start_threshold: 0.1
//	  end_threshold: 0.0
//	iterations_limit: 1000000
//	time_limit: 3600                           # seconds
//
// Loading is forgiving on purpose: a missing key, a key of the wrong type
// or a value outside its documented range falls back to that key's default
// without failing the load, so a half-written parameter file still produces
// a usable configuration. Only an unreadable file or a syntactically broken
// document is an error.
package alns

import (
	"errors"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Criterion names accepted in main_termination_criterion.
const (
	criterionIterations = "iterations"
	criterionTime       = "time"
)

// paramsDocument mirrors the on-disk layout. Pointer fields distinguish
// "absent" from "zero"; a type-mismatched key stays nil because yaml.v3
// keeps decoding the remaining fields around a *yaml.TypeError.
type paramsDocument struct {
	Scores struct {
		ScoreDecay             *float64 `yaml:"score_decay"`
		NewBestMultiplier      *float64 `yaml:"new_best_multiplier"`
		NewImprovingMultiplier *float64 `yaml:"new_improving_multiplier"`
		NewAcceptedMultiplier  *float64 `yaml:"new_accepted_multiplier"`
	} `yaml:"scores"`
	Acceptance struct {
		MainTerminationCriterion *string  `yaml:"main_termination_criterion"`
		StartThreshold           *float64 `yaml:"start_threshold"`
		EndThreshold             *float64 `yaml:"end_threshold"`
	} `yaml:"acceptance"`
	IterationsLimit *int     `yaml:"iterations_limit"`
	TimeLimit       *float64 `yaml:"time_limit"`
}

// readDocument loads and decodes path, tolerating per-key type mismatches.
func readDocument(path string) (paramsDocument, error) {
	var doc paramsDocument

	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}

	if err = yaml.Unmarshal(raw, &doc); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return doc, err
		}
		// Mismatched keys stayed nil; their defaults apply.
	}

	return doc, nil
}

// LoadParams reads score-adaptation parameters from the scores section of
// the document at path. Missing, mistyped or out-of-range keys keep their
// DefaultParams value, so the result always passes Validate.
//
// Errors (from os.ReadFile or yaml) occur only for an unreadable file or a
// document that is not valid YAML at all.
func LoadParams(path string) (Params, error) {
	doc, err := readDocument(path)
	if err != nil {
		return Params{}, err
	}

	p := DefaultParams()
	if v := doc.Scores.ScoreDecay; v != nil && *v > 0 && *v < 1 {
		p.ScoreDecay = *v
	}
	if v := doc.Scores.NewBestMultiplier; v != nil && *v > 0 {
		p.NewBestMultiplier = *v
	}
	if v := doc.Scores.NewImprovingMultiplier; v != nil && *v > 0 {
		p.NewImprovingMultiplier = *v
	}
	if v := doc.Scores.NewAcceptedMultiplier; v != nil && *v > 0 {
		p.NewAcceptedMultiplier = *v
	}

	return p, nil
}

// LoadLinearRecordToRecordTravel reads the acceptance section and the run
// limits from the document at path. The same per-key fallback rules apply:
// an unknown criterion name falls back to ByIterations, non-positive limits
// to the package defaults, NaN thresholds to 0.1/0.0. time_limit is given
// in (possibly fractional) seconds.
func LoadLinearRecordToRecordTravel[S Solution[S]](path string) (*LinearRecordToRecordTravel[S], error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	a := NewLinearRecordToRecordTravel[S]()
	if v := doc.Acceptance.MainTerminationCriterion; v != nil {
		switch *v {
		case criterionIterations:
			a.Criterion = ByIterations
		case criterionTime:
			a.Criterion = ByTime
		}
	}
	if v := doc.Acceptance.StartThreshold; v != nil && !math.IsNaN(*v) {
		a.StartThreshold = *v
	}
	if v := doc.Acceptance.EndThreshold; v != nil && !math.IsNaN(*v) {
		a.EndThreshold = *v
	}
	if v := doc.IterationsLimit; v != nil && *v > 0 {
		a.IterationsLimit = *v
	}
	if v := doc.TimeLimit; v != nil && *v > 0 {
		a.TimeLimit = time.Duration(*v * float64(time.Second))
	}

	return a, nil
}

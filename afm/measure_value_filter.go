package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of MeasureValueFilterCondition.
const (
	KeyComparison = "comparison"
	KeyRange      = "range"
)

// MeasureValueFilter keeps the rows whose measure value satisfies Condition.
// A nil Condition filters nothing.
type MeasureValueFilter struct {
	Measure   Qualifier                   `json:"measure" validate:"required"`
	Condition MeasureValueFilterCondition `json:"condition,omitempty"`
}

func (MeasureValueFilter) compatibilityFilter() {}
func (MeasureValueFilter) extendedFilter()      {}

// MarshalJSON implements json.Marshaler for MeasureValueFilter.
func (f MeasureValueFilter) MarshalJSON() ([]byte, error) {
	type body MeasureValueFilter
	return union.Wrap(KeyMeasureValueFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureValueFilter.
func (f *MeasureValueFilter) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureValueFilter)
	if err != nil {
		return err
	}

	var aux struct {
		Measure   json.RawMessage `json:"measure"`
		Condition json.RawMessage `json:"condition"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureValueFilter, err)
	}

	var measure Qualifier
	if !union.Absent(aux.Measure) {
		measure, err = UnmarshalQualifier(aux.Measure)
		if err != nil {
			return fmt.Errorf("%s.measure: %w", KeyMeasureValueFilter, err)
		}
	}

	var condition MeasureValueFilterCondition
	if !union.Absent(aux.Condition) {
		condition, err = UnmarshalMeasureValueFilterCondition(aux.Condition)
		if err != nil {
			return fmt.Errorf("%s.condition: %w", KeyMeasureValueFilter, err)
		}
	}

	*f = MeasureValueFilter{Measure: measure, Condition: condition}
	return nil
}

// MeasureValueFilterCondition is ComparisonCondition or RangeCondition.
type MeasureValueFilterCondition interface {
	measureValueFilterCondition()
}

// ComparisonCondition compares the measure value with Value.
type ComparisonCondition struct {
	Operator          ComparisonConditionOperator `json:"operator" validate:"required"`
	Value             float64                     `json:"value"`
	TreatNullValuesAs *float64                    `json:"treatNullValuesAs,omitempty"`
}

func (ComparisonCondition) measureValueFilterCondition() {}

// MarshalJSON implements json.Marshaler for ComparisonCondition.
func (c ComparisonCondition) MarshalJSON() ([]byte, error) {
	type body ComparisonCondition
	return union.Wrap(KeyComparison, body(c))
}

// UnmarshalJSON implements json.Unmarshaler for ComparisonCondition.
func (c *ComparisonCondition) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyComparison)
	if err != nil {
		return err
	}
	type body ComparisonCondition
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyComparison, err)
	}
	*c = ComparisonCondition(b)
	return nil
}

// RangeCondition checks whether the measure value lies between From and To.
type RangeCondition struct {
	Operator          RangeConditionOperator `json:"operator" validate:"required"`
	From              float64                `json:"from"`
	To                float64                `json:"to"`
	TreatNullValuesAs *float64               `json:"treatNullValuesAs,omitempty"`
}

func (RangeCondition) measureValueFilterCondition() {}

// MarshalJSON implements json.Marshaler for RangeCondition.
func (c RangeCondition) MarshalJSON() ([]byte, error) {
	type body RangeCondition
	return union.Wrap(KeyRange, body(c))
}

// UnmarshalJSON implements json.Unmarshaler for RangeCondition.
func (c *RangeCondition) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyRange)
	if err != nil {
		return err
	}
	type body RangeCondition
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyRange, err)
	}
	*c = RangeCondition(b)
	return nil
}

// IsComparisonCondition reports whether c is a comparison condition.
func IsComparisonCondition(c MeasureValueFilterCondition) bool {
	return union.Is[ComparisonCondition](c)
}

// IsRangeCondition reports whether c is a range condition.
func IsRangeCondition(c MeasureValueFilterCondition) bool {
	return union.Is[RangeCondition](c)
}

// UnmarshalMeasureValueFilterCondition decodes a comparison or range condition.
func UnmarshalMeasureValueFilterCondition(data []byte) (MeasureValueFilterCondition, error) {
	key, _, err := union.Discriminate("measureValueFilterCondition", data, KeyComparison, KeyRange)
	if err != nil {
		return nil, err
	}

	if key == KeyComparison {
		var c ComparisonCondition
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	}

	var c RangeCondition
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

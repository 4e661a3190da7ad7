package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of MeasureDefinition.
const (
	KeyMeasure               = "measure"
	KeyArithmeticMeasure     = "arithmeticMeasure"
	KeyPopMeasure            = "popMeasure"
	KeyPreviousPeriodMeasure = "previousPeriodMeasure"
)

var measureDefinitionKeys = []string{KeyMeasure, KeyArithmeticMeasure, KeyPopMeasure, KeyPreviousPeriodMeasure}

// Measure is a value computed by the backend.
type Measure struct {
	LocalIdentifier string            `json:"localIdentifier" validate:"required"`
	Definition      MeasureDefinition `json:"definition" validate:"required"`
	Alias           string            `json:"alias,omitempty"`
	Format          string            `json:"format,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler for Measure.
func (m *Measure) UnmarshalJSON(data []byte) error {
	var aux struct {
		LocalIdentifier string          `json:"localIdentifier"`
		Definition      json.RawMessage `json:"definition"`
		Alias           string          `json:"alias"`
		Format          string          `json:"format"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("measure: %w", err)
	}

	var def MeasureDefinition
	if !union.Absent(aux.Definition) {
		d, err := UnmarshalMeasureDefinition(aux.Definition)
		if err != nil {
			return fmt.Errorf("measure %q definition: %w", aux.LocalIdentifier, err)
		}
		def = d
	}

	*m = Measure{
		LocalIdentifier: aux.LocalIdentifier,
		Definition:      def,
		Alias:           aux.Alias,
		Format:          aux.Format,
	}
	return nil
}

// MeasureDefinition is the closed union of measure kinds.
//
// Implemented by SimpleMeasure, ArithmeticMeasure, PopMeasure and PreviousPeriodMeasure.
type MeasureDefinition interface {
	measureDefinition()
}

// SimpleMeasure aggregates a backend item, optionally filtered.
type SimpleMeasure struct {
	Item         ObjQualifier             `json:"item" validate:"required"`
	Aggregation  SimpleMeasureAggregation `json:"aggregation,omitempty"`
	Filters      []FilterItem             `json:"filters,omitempty" validate:"dive"`
	ComputeRatio bool                     `json:"computeRatio,omitempty"`
}

func (SimpleMeasure) measureDefinition() {}

// MarshalJSON implements json.Marshaler for SimpleMeasure.
func (m SimpleMeasure) MarshalJSON() ([]byte, error) {
	type body SimpleMeasure
	return union.Wrap(KeyMeasure, body(m))
}

// UnmarshalJSON implements json.Unmarshaler for SimpleMeasure.
func (m *SimpleMeasure) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasure)
	if err != nil {
		return err
	}

	var aux struct {
		Item         json.RawMessage          `json:"item"`
		Aggregation  SimpleMeasureAggregation `json:"aggregation"`
		Filters      []json.RawMessage        `json:"filters"`
		ComputeRatio bool                     `json:"computeRatio"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("measure: %w", err)
	}

	item, err := optionalObjQualifier("measure.item", aux.Item)
	if err != nil {
		return err
	}

	var filters []FilterItem
	if aux.Filters != nil {
		filters = make([]FilterItem, len(aux.Filters))
		for i, f := range aux.Filters {
			filters[i], err = UnmarshalFilterItem(f)
			if err != nil {
				return fmt.Errorf("measure.filters[%d]: %w", i, err)
			}
		}
	}

	*m = SimpleMeasure{
		Item:         item,
		Aggregation:  aux.Aggregation,
		Filters:      filters,
		ComputeRatio: aux.ComputeRatio,
	}
	return nil
}

// ArithmeticMeasure combines other measures of the same AFM.
type ArithmeticMeasure struct {
	MeasureIdentifiers []string                  `json:"measureIdentifiers"`
	Operator           ArithmeticMeasureOperator `json:"operator" validate:"required"`
}

func (ArithmeticMeasure) measureDefinition() {}

// MarshalJSON implements json.Marshaler for ArithmeticMeasure.
func (m ArithmeticMeasure) MarshalJSON() ([]byte, error) {
	type body ArithmeticMeasure
	m.MeasureIdentifiers = union.NonNil(m.MeasureIdentifiers)
	return union.Wrap(KeyArithmeticMeasure, body(m))
}

// UnmarshalJSON implements json.Unmarshaler for ArithmeticMeasure.
func (m *ArithmeticMeasure) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyArithmeticMeasure)
	if err != nil {
		return err
	}
	type body ArithmeticMeasure
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("arithmeticMeasure: %w", err)
	}
	*m = ArithmeticMeasure(b)
	return nil
}

// PopMeasure is the period-over-period variant of another measure,
// pivoted over a date attribute.
type PopMeasure struct {
	MeasureIdentifier string       `json:"measureIdentifier" validate:"required"`
	PopAttribute      ObjQualifier `json:"popAttribute" validate:"required"`
}

func (PopMeasure) measureDefinition() {}

// MarshalJSON implements json.Marshaler for PopMeasure.
func (m PopMeasure) MarshalJSON() ([]byte, error) {
	type body PopMeasure
	return union.Wrap(KeyPopMeasure, body(m))
}

// UnmarshalJSON implements json.Unmarshaler for PopMeasure.
func (m *PopMeasure) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyPopMeasure)
	if err != nil {
		return err
	}

	var aux struct {
		MeasureIdentifier string          `json:"measureIdentifier"`
		PopAttribute      json.RawMessage `json:"popAttribute"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("popMeasure: %w", err)
	}

	attr, err := optionalObjQualifier("popMeasure.popAttribute", aux.PopAttribute)
	if err != nil {
		return err
	}

	*m = PopMeasure{MeasureIdentifier: aux.MeasureIdentifier, PopAttribute: attr}
	return nil
}

// PreviousPeriodMeasure shifts another measure back by a number of periods
// of one or more date data sets.
type PreviousPeriodMeasure struct {
	MeasureIdentifier string                      `json:"measureIdentifier" validate:"required"`
	DateDataSets      []PreviousPeriodDateDataSet `json:"dateDataSets" validate:"dive"`
}

func (PreviousPeriodMeasure) measureDefinition() {}

// PreviousPeriodDateDataSet is one shift of a PreviousPeriodMeasure.
type PreviousPeriodDateDataSet struct {
	DataSet    ObjQualifier `json:"dataSet" validate:"required"`
	PeriodsAgo int          `json:"periodsAgo"`
}

// UnmarshalJSON implements json.Unmarshaler for PreviousPeriodDateDataSet.
func (d *PreviousPeriodDateDataSet) UnmarshalJSON(data []byte) error {
	var aux struct {
		DataSet    json.RawMessage `json:"dataSet"`
		PeriodsAgo int             `json:"periodsAgo"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("dateDataSet: %w", err)
	}

	ds, err := optionalObjQualifier("dateDataSet.dataSet", aux.DataSet)
	if err != nil {
		return err
	}

	*d = PreviousPeriodDateDataSet{DataSet: ds, PeriodsAgo: aux.PeriodsAgo}
	return nil
}

// MarshalJSON implements json.Marshaler for PreviousPeriodMeasure.
func (m PreviousPeriodMeasure) MarshalJSON() ([]byte, error) {
	type body PreviousPeriodMeasure
	m.DateDataSets = union.NonNil(m.DateDataSets)
	return union.Wrap(KeyPreviousPeriodMeasure, body(m))
}

// UnmarshalJSON implements json.Unmarshaler for PreviousPeriodMeasure.
func (m *PreviousPeriodMeasure) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyPreviousPeriodMeasure)
	if err != nil {
		return err
	}
	type body PreviousPeriodMeasure
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("previousPeriodMeasure: %w", err)
	}
	*m = PreviousPeriodMeasure(b)
	return nil
}

// IsSimpleMeasureDefinition reports whether d is a simple measure.
func IsSimpleMeasureDefinition(d MeasureDefinition) bool {
	return union.Is[SimpleMeasure](d)
}

// IsArithmeticMeasureDefinition reports whether d is an arithmetic measure.
func IsArithmeticMeasureDefinition(d MeasureDefinition) bool {
	return union.Is[ArithmeticMeasure](d)
}

// IsPopMeasureDefinition reports whether d is a period-over-period measure.
func IsPopMeasureDefinition(d MeasureDefinition) bool {
	return union.Is[PopMeasure](d)
}

// IsPreviousPeriodMeasureDefinition reports whether d is a previous period measure.
func IsPreviousPeriodMeasureDefinition(d MeasureDefinition) bool {
	return union.Is[PreviousPeriodMeasure](d)
}

// UnmarshalMeasureDefinition decodes one of the four measure definition shapes.
func UnmarshalMeasureDefinition(data []byte) (MeasureDefinition, error) {
	key, _, err := union.Discriminate("measureDefinition", data, measureDefinitionKeys...)
	if err != nil {
		return nil, err
	}

	switch key {
	case KeyMeasure:
		var m SimpleMeasure
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case KeyArithmeticMeasure:
		var m ArithmeticMeasure
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case KeyPopMeasure:
		var m PopMeasure
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		var m PreviousPeriodMeasure
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	}
}

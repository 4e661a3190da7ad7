package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Execution is the top-level request sent to the execution backend.
type Execution struct {
	AFM        AFM         `json:"afm"`
	ResultSpec *ResultSpec `json:"resultSpec,omitempty"`
}

// AFM describes what to compute. Every section is optional; an absent
// section and an empty one mean the same thing and both encode as absent.
type AFM struct {
	Attributes   []Attribute           `json:"attributes,omitempty" validate:"dive"`
	Measures     []Measure             `json:"measures,omitempty" validate:"dive"`
	Filters      []CompatibilityFilter `json:"filters,omitempty" validate:"dive"`
	NativeTotals []NativeTotalItem     `json:"nativeTotals,omitempty" validate:"dive"`
}

// UnmarshalJSON implements json.Unmarshaler for AFM.
func (a *AFM) UnmarshalJSON(data []byte) error {
	var aux struct {
		Attributes   []Attribute       `json:"attributes"`
		Measures     []Measure         `json:"measures"`
		Filters      []json.RawMessage `json:"filters"`
		NativeTotals []NativeTotalItem `json:"nativeTotals"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("afm: %w", err)
	}

	var filters []CompatibilityFilter
	if aux.Filters != nil {
		filters = make([]CompatibilityFilter, len(aux.Filters))
		for i, raw := range aux.Filters {
			f, err := UnmarshalCompatibilityFilter(raw)
			if err != nil {
				return fmt.Errorf("afm.filters[%d]: %w", i, err)
			}
			filters[i] = f
		}
	}

	*a = AFM{
		Attributes:   aux.Attributes,
		Measures:     aux.Measures,
		Filters:      filters,
		NativeTotals: aux.NativeTotals,
	}
	return nil
}

// IsEmpty reports whether the AFM has no attributes, measures, filters or native totals.
func (a AFM) IsEmpty() bool {
	return len(a.Attributes) == 0 && len(a.Measures) == 0 && len(a.Filters) == 0 && len(a.NativeTotals) == 0
}

// FindAttribute returns the attribute with the given local identifier.
func (a AFM) FindAttribute(localIdentifier string) (Attribute, bool) {
	for _, attr := range a.Attributes {
		if attr.LocalIdentifier == localIdentifier {
			return attr, true
		}
	}
	return Attribute{}, false
}

// FindMeasure returns the measure with the given local identifier.
func (a AFM) FindMeasure(localIdentifier string) (Measure, bool) {
	for _, m := range a.Measures {
		if m.LocalIdentifier == localIdentifier {
			return m, true
		}
	}
	return Measure{}, false
}

// DecodeExecution decodes a JSON execution request.
func DecodeExecution(data []byte) (Execution, error) {
	var exec Execution
	if err := json.Unmarshal(data, &exec); err != nil {
		return Execution{}, fmt.Errorf("decode execution: %w", err)
	}
	return exec, nil
}

// Attribute slices the result by the elements of a display form.
type Attribute struct {
	LocalIdentifier string       `json:"localIdentifier" validate:"required"`
	DisplayForm     ObjQualifier `json:"displayForm" validate:"required"`
	Alias           string       `json:"alias,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler for Attribute.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var aux struct {
		LocalIdentifier string          `json:"localIdentifier"`
		DisplayForm     json.RawMessage `json:"displayForm"`
		Alias           string          `json:"alias"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("attribute: %w", err)
	}

	displayForm, err := optionalObjQualifier("attribute.displayForm", aux.DisplayForm)
	if err != nil {
		return err
	}

	*a = Attribute{
		LocalIdentifier: aux.LocalIdentifier,
		DisplayForm:     displayForm,
		Alias:           aux.Alias,
	}
	return nil
}

// TotalItem requests a total of a measure over an attribute.
type TotalItem struct {
	MeasureIdentifier   string    `json:"measureIdentifier" validate:"required"`
	Type                TotalType `json:"type" validate:"required"`
	AttributeIdentifier string    `json:"attributeIdentifier" validate:"required"`
}

// NativeTotalItem requests a backend-computed total of a measure.
type NativeTotalItem struct {
	MeasureIdentifier    string   `json:"measureIdentifier" validate:"required"`
	AttributeIdentifiers []string `json:"attributeIdentifiers"`
}

// MarshalJSON implements json.Marshaler for NativeTotalItem.
func (n NativeTotalItem) MarshalJSON() ([]byte, error) {
	type body NativeTotalItem
	n.AttributeIdentifiers = union.NonNil(n.AttributeIdentifiers)
	return json.Marshal(body(n))
}

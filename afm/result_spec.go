package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of SortItem and LocatorItem.
const (
	KeyAttributeSortItem    = "attributeSortItem"
	KeyMeasureSortItem      = "measureSortItem"
	KeyAttributeLocatorItem = "attributeLocatorItem"
	KeyMeasureLocatorItem   = "measureLocatorItem"
)

// ResultSpec shapes the execution result: how items are laid out in
// dimensions, which totals to add and how to sort.
type ResultSpec struct {
	Dimensions []Dimension `json:"dimensions,omitempty" validate:"dive"`
	Sorts      []SortItem  `json:"sorts,omitempty" validate:"dive"`
}

// UnmarshalJSON implements json.Unmarshaler for ResultSpec.
func (r *ResultSpec) UnmarshalJSON(data []byte) error {
	var aux struct {
		Dimensions []Dimension       `json:"dimensions"`
		Sorts      []json.RawMessage `json:"sorts"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("resultSpec: %w", err)
	}

	var sorts []SortItem
	if aux.Sorts != nil {
		sorts = make([]SortItem, len(aux.Sorts))
		for i, raw := range aux.Sorts {
			s, err := UnmarshalSortItem(raw)
			if err != nil {
				return fmt.Errorf("resultSpec.sorts[%d]: %w", i, err)
			}
			sorts[i] = s
		}
	}

	*r = ResultSpec{Dimensions: aux.Dimensions, Sorts: sorts}
	return nil
}

// Dimension lists the attribute local identifiers (and possibly MeasureGroup)
// laid out along one axis of the result.
type Dimension struct {
	ItemIdentifiers []string    `json:"itemIdentifiers"`
	Totals          []TotalItem `json:"totals,omitempty" validate:"dive"`
}

// MarshalJSON implements json.Marshaler for Dimension.
func (d Dimension) MarshalJSON() ([]byte, error) {
	type body Dimension
	d.ItemIdentifiers = union.NonNil(d.ItemIdentifiers)
	return json.Marshal(body(d))
}

// SortItem is AttributeSortItem or MeasureSortItem.
type SortItem interface {
	sortItem()
}

// AttributeSortItem sorts by the elements of an attribute.
type AttributeSortItem struct {
	Direction           SortDirection   `json:"direction" validate:"required"`
	AttributeIdentifier string          `json:"attributeIdentifier" validate:"required"`
	Aggregation         SortAggregation `json:"aggregation,omitempty"`
}

func (AttributeSortItem) sortItem() {}

// MarshalJSON implements json.Marshaler for AttributeSortItem.
func (s AttributeSortItem) MarshalJSON() ([]byte, error) {
	type body AttributeSortItem
	return union.Wrap(KeyAttributeSortItem, body(s))
}

// UnmarshalJSON implements json.Unmarshaler for AttributeSortItem.
func (s *AttributeSortItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyAttributeSortItem)
	if err != nil {
		return err
	}
	type body AttributeSortItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyAttributeSortItem, err)
	}
	*s = AttributeSortItem(b)
	return nil
}

// MeasureSortItem sorts by the values of a measure, located by Locators.
type MeasureSortItem struct {
	Direction SortDirection `json:"direction" validate:"required"`
	Locators  []LocatorItem `json:"locators" validate:"dive"`
}

func (MeasureSortItem) sortItem() {}

// MarshalJSON implements json.Marshaler for MeasureSortItem.
func (s MeasureSortItem) MarshalJSON() ([]byte, error) {
	type body MeasureSortItem
	s.Locators = union.NonNil(s.Locators)
	return union.Wrap(KeyMeasureSortItem, body(s))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureSortItem.
func (s *MeasureSortItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureSortItem)
	if err != nil {
		return err
	}

	var aux struct {
		Direction SortDirection     `json:"direction"`
		Locators  []json.RawMessage `json:"locators"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureSortItem, err)
	}

	var locators []LocatorItem
	if aux.Locators != nil {
		locators = make([]LocatorItem, len(aux.Locators))
		for i, l := range aux.Locators {
			locators[i], err = UnmarshalLocatorItem(l)
			if err != nil {
				return fmt.Errorf("%s.locators[%d]: %w", KeyMeasureSortItem, i, err)
			}
		}
	}

	*s = MeasureSortItem{Direction: aux.Direction, Locators: locators}
	return nil
}

// LocatorItem is AttributeLocatorItem or MeasureLocatorItem.
type LocatorItem interface {
	locatorItem()
}

// AttributeLocatorItem pins an attribute to one element.
type AttributeLocatorItem struct {
	AttributeIdentifier string `json:"attributeIdentifier" validate:"required"`
	Element             string `json:"element" validate:"required"`
}

func (AttributeLocatorItem) locatorItem() {}

// MarshalJSON implements json.Marshaler for AttributeLocatorItem.
func (l AttributeLocatorItem) MarshalJSON() ([]byte, error) {
	type body AttributeLocatorItem
	return union.Wrap(KeyAttributeLocatorItem, body(l))
}

// UnmarshalJSON implements json.Unmarshaler for AttributeLocatorItem.
func (l *AttributeLocatorItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyAttributeLocatorItem)
	if err != nil {
		return err
	}
	type body AttributeLocatorItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyAttributeLocatorItem, err)
	}
	*l = AttributeLocatorItem(b)
	return nil
}

// MeasureLocatorItem selects a measure.
type MeasureLocatorItem struct {
	MeasureIdentifier string `json:"measureIdentifier" validate:"required"`
}

func (MeasureLocatorItem) locatorItem() {}

// MarshalJSON implements json.Marshaler for MeasureLocatorItem.
func (l MeasureLocatorItem) MarshalJSON() ([]byte, error) {
	type body MeasureLocatorItem
	return union.Wrap(KeyMeasureLocatorItem, body(l))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureLocatorItem.
func (l *MeasureLocatorItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureLocatorItem)
	if err != nil {
		return err
	}
	type body MeasureLocatorItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureLocatorItem, err)
	}
	*l = MeasureLocatorItem(b)
	return nil
}

// IsAttributeSortItem reports whether s sorts by attribute.
func IsAttributeSortItem(s SortItem) bool {
	return union.Is[AttributeSortItem](s)
}

// IsMeasureSortItem reports whether s sorts by measure.
func IsMeasureSortItem(s SortItem) bool {
	return union.Is[MeasureSortItem](s)
}

// IsAttributeLocatorItem reports whether l locates an attribute element.
func IsAttributeLocatorItem(l LocatorItem) bool {
	return union.Is[AttributeLocatorItem](l)
}

// IsMeasureLocatorItem reports whether l locates a measure.
func IsMeasureLocatorItem(l LocatorItem) bool {
	return union.Is[MeasureLocatorItem](l)
}

// UnmarshalSortItem decodes an attribute or measure sort item.
func UnmarshalSortItem(data []byte) (SortItem, error) {
	key, _, err := union.Discriminate("sortItem", data, KeyAttributeSortItem, KeyMeasureSortItem)
	if err != nil {
		return nil, err
	}

	if key == KeyAttributeSortItem {
		var s AttributeSortItem
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	}

	var s MeasureSortItem
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalLocatorItem decodes an attribute or measure locator.
func UnmarshalLocatorItem(data []byte) (LocatorItem, error) {
	key, _, err := union.Discriminate("locatorItem", data, KeyAttributeLocatorItem, KeyMeasureLocatorItem)
	if err != nil {
		return nil, err
	}

	if key == KeyAttributeLocatorItem {
		var l AttributeLocatorItem
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}
		return l, nil
	}

	var l MeasureLocatorItem
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return l, nil
}

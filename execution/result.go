package execution

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of ResultHeaderItem.
const (
	KeyAttributeHeaderItem = "attributeHeaderItem"
	KeyMeasureHeaderItem   = "measureHeaderItem"
	KeyTotalHeaderItem     = "totalHeaderItem"
)

// Result is one page of computed data.
//
// HeaderItems is indexed by dimension, then by header within the dimension,
// then by position along the dimension. Data and Totals stay raw; their
// nesting depends on the number of dimensions.
type Result struct {
	Data        json.RawMessage        `json:"data"`
	HeaderItems [][][]ResultHeaderItem `json:"headerItems,omitempty"`
	Totals      json.RawMessage        `json:"totals,omitempty"`
	Paging      Paging                 `json:"paging"`
}

// UnmarshalJSON implements json.Unmarshaler for Result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var aux struct {
		Data        json.RawMessage       `json:"data"`
		HeaderItems [][][]json.RawMessage `json:"headerItems"`
		Totals      json.RawMessage       `json:"totals"`
		Paging      Paging                `json:"paging"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	var items [][][]ResultHeaderItem
	if aux.HeaderItems != nil {
		items = make([][][]ResultHeaderItem, len(aux.HeaderItems))
		for d, dim := range aux.HeaderItems {
			items[d] = make([][]ResultHeaderItem, len(dim))
			for h, header := range dim {
				items[d][h] = make([]ResultHeaderItem, len(header))
				for i, raw := range header {
					item, err := UnmarshalResultHeaderItem(raw)
					if err != nil {
						return fmt.Errorf("result.headerItems[%d][%d][%d]: %w", d, h, i, err)
					}
					items[d][h][i] = item
				}
			}
		}
	}

	totals := aux.Totals
	if union.Absent(totals) {
		totals = nil
	}

	*r = Result{Data: aux.Data, HeaderItems: items, Totals: totals, Paging: aux.Paging}
	return nil
}

// Paging locates a result page. Each slice has one entry per dimension.
type Paging struct {
	Count  []int `json:"count"`
	Offset []int `json:"offset"`
	Total  []int `json:"total"`
}

// ResultHeaderItem is AttributeHeaderItem, MeasureHeaderItem or TotalHeaderItem.
type ResultHeaderItem interface {
	resultHeaderItem()
}

// AttributeHeaderItem is one attribute element along a dimension.
type AttributeHeaderItem struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

func (AttributeHeaderItem) resultHeaderItem() {}

// MarshalJSON implements json.Marshaler for AttributeHeaderItem.
func (i AttributeHeaderItem) MarshalJSON() ([]byte, error) {
	type body AttributeHeaderItem
	return union.Wrap(KeyAttributeHeaderItem, body(i))
}

// UnmarshalJSON implements json.Unmarshaler for AttributeHeaderItem.
func (i *AttributeHeaderItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyAttributeHeaderItem)
	if err != nil {
		return err
	}
	type body AttributeHeaderItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyAttributeHeaderItem, err)
	}
	*i = AttributeHeaderItem(b)
	return nil
}

// MeasureHeaderItem is one measure along a dimension. Order is the index
// of the measure in the measure group header.
type MeasureHeaderItem struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (MeasureHeaderItem) resultHeaderItem() {}

// MarshalJSON implements json.Marshaler for MeasureHeaderItem.
func (i MeasureHeaderItem) MarshalJSON() ([]byte, error) {
	type body MeasureHeaderItem
	return union.Wrap(KeyMeasureHeaderItem, body(i))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureHeaderItem.
func (i *MeasureHeaderItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureHeaderItem)
	if err != nil {
		return err
	}
	type body MeasureHeaderItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureHeaderItem, err)
	}
	*i = MeasureHeaderItem(b)
	return nil
}

// TotalHeaderItem labels a total row or column. In header totalItems only
// Name is set.
type TotalHeaderItem struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

func (TotalHeaderItem) resultHeaderItem() {}

// MarshalJSON implements json.Marshaler for TotalHeaderItem.
func (i TotalHeaderItem) MarshalJSON() ([]byte, error) {
	type body TotalHeaderItem
	return union.Wrap(KeyTotalHeaderItem, body(i))
}

// UnmarshalJSON implements json.Unmarshaler for TotalHeaderItem.
func (i *TotalHeaderItem) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyTotalHeaderItem)
	if err != nil {
		return err
	}
	type body TotalHeaderItem
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyTotalHeaderItem, err)
	}
	*i = TotalHeaderItem(b)
	return nil
}

// IsAttributeHeaderItem reports whether i is an attribute element.
func IsAttributeHeaderItem(i ResultHeaderItem) bool {
	return union.Is[AttributeHeaderItem](i)
}

// IsMeasureHeaderItem reports whether i is a measure.
func IsMeasureHeaderItem(i ResultHeaderItem) bool {
	return union.Is[MeasureHeaderItem](i)
}

// IsTotalHeaderItem reports whether i is a total label.
func IsTotalHeaderItem(i ResultHeaderItem) bool {
	return union.Is[TotalHeaderItem](i)
}

// UnmarshalResultHeaderItem decodes an attribute, measure or total header item.
func UnmarshalResultHeaderItem(data []byte) (ResultHeaderItem, error) {
	key, _, err := union.Discriminate("resultHeaderItem", data,
		KeyAttributeHeaderItem, KeyMeasureHeaderItem, KeyTotalHeaderItem)
	if err != nil {
		return nil, err
	}

	switch key {
	case KeyAttributeHeaderItem:
		var i AttributeHeaderItem
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return i, nil
	case KeyMeasureHeaderItem:
		var i MeasureHeaderItem
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return i, nil
	default:
		var i TotalHeaderItem
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return i, nil
	}
}

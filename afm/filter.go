package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of the filter unions.
const (
	KeyPositiveAttributeFilter = "positiveAttributeFilter"
	KeyNegativeAttributeFilter = "negativeAttributeFilter"
	KeyAbsoluteDateFilter      = "absoluteDateFilter"
	KeyRelativeDateFilter      = "relativeDateFilter"
	KeyMeasureValueFilter      = "measureValueFilter"
	KeyExpressionFilter        = "expressionFilter"
)

var (
	filterItemKeys = []string{
		KeyPositiveAttributeFilter, KeyNegativeAttributeFilter,
		KeyAbsoluteDateFilter, KeyRelativeDateFilter,
	}
	extendedFilterKeys      = append(append([]string{}, filterItemKeys...), KeyMeasureValueFilter)
	compatibilityFilterKeys = append(append([]string{}, extendedFilterKeys...), KeyExpressionFilter)
)

// CompatibilityFilter is any filter accepted in AFM.Filters, including the
// legacy expression filter kept so older payloads remain representable.
type CompatibilityFilter interface {
	compatibilityFilter()
}

// ExtendedFilter is a CompatibilityFilter other than ExpressionFilter.
type ExtendedFilter interface {
	CompatibilityFilter
	extendedFilter()
}

// FilterItem is an attribute or date filter. Simple measures accept only these.
type FilterItem interface {
	ExtendedFilter
	filterItem()
}

// DateFilterItem is AbsoluteDateFilter or RelativeDateFilter.
type DateFilterItem interface {
	FilterItem
	dateFilterItem()
}

// AttributeFilterItem is PositiveAttributeFilter or NegativeAttributeFilter.
type AttributeFilterItem interface {
	FilterItem
	attributeFilterItem()
}

// PositiveAttributeFilter keeps only the listed attribute elements.
type PositiveAttributeFilter struct {
	DisplayForm ObjQualifier `json:"displayForm" validate:"required"`
	In          []string     `json:"in"`
	TextFilter  bool         `json:"textFilter,omitempty"`
}

func (PositiveAttributeFilter) compatibilityFilter() {}
func (PositiveAttributeFilter) extendedFilter()      {}
func (PositiveAttributeFilter) filterItem()          {}
func (PositiveAttributeFilter) attributeFilterItem() {}

// MarshalJSON implements json.Marshaler for PositiveAttributeFilter.
func (f PositiveAttributeFilter) MarshalJSON() ([]byte, error) {
	type body PositiveAttributeFilter
	f.In = union.NonNil(f.In)
	return union.Wrap(KeyPositiveAttributeFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for PositiveAttributeFilter.
func (f *PositiveAttributeFilter) UnmarshalJSON(data []byte) error {
	displayForm, elements, textFilter, err := decodeAttributeFilter(data, KeyPositiveAttributeFilter, "in")
	if err != nil {
		return err
	}
	*f = PositiveAttributeFilter{DisplayForm: displayForm, In: elements, TextFilter: textFilter}
	return nil
}

// NegativeAttributeFilter drops the listed attribute elements.
type NegativeAttributeFilter struct {
	DisplayForm ObjQualifier `json:"displayForm" validate:"required"`
	NotIn       []string     `json:"notIn"`
	TextFilter  bool         `json:"textFilter,omitempty"`
}

func (NegativeAttributeFilter) compatibilityFilter() {}
func (NegativeAttributeFilter) extendedFilter()      {}
func (NegativeAttributeFilter) filterItem()          {}
func (NegativeAttributeFilter) attributeFilterItem() {}

// MarshalJSON implements json.Marshaler for NegativeAttributeFilter.
func (f NegativeAttributeFilter) MarshalJSON() ([]byte, error) {
	type body NegativeAttributeFilter
	f.NotIn = union.NonNil(f.NotIn)
	return union.Wrap(KeyNegativeAttributeFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for NegativeAttributeFilter.
func (f *NegativeAttributeFilter) UnmarshalJSON(data []byte) error {
	displayForm, elements, textFilter, err := decodeAttributeFilter(data, KeyNegativeAttributeFilter, "notIn")
	if err != nil {
		return err
	}
	*f = NegativeAttributeFilter{DisplayForm: displayForm, NotIn: elements, TextFilter: textFilter}
	return nil
}

func decodeAttributeFilter(data []byte, key, elementsField string) (ObjQualifier, []string, bool, error) {
	raw, err := union.Unwrap(data, key)
	if err != nil {
		return nil, nil, false, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", key, err)
	}

	displayForm, err := optionalObjQualifier(key+".displayForm", fields["displayForm"])
	if err != nil {
		return nil, nil, false, err
	}

	var elements []string
	if !union.Absent(fields[elementsField]) {
		if err := json.Unmarshal(fields[elementsField], &elements); err != nil {
			return nil, nil, false, fmt.Errorf("%s.%s: %w", key, elementsField, err)
		}
	}

	var textFilter bool
	if !union.Absent(fields["textFilter"]) {
		if err := json.Unmarshal(fields["textFilter"], &textFilter); err != nil {
			return nil, nil, false, fmt.Errorf("%s.textFilter: %w", key, err)
		}
	}

	return displayForm, elements, textFilter, nil
}

// AbsoluteDateFilter restricts a date data set to a fixed range of date strings.
type AbsoluteDateFilter struct {
	DataSet ObjQualifier `json:"dataSet" validate:"required"`
	From    string       `json:"from"`
	To      string       `json:"to"`
}

func (AbsoluteDateFilter) compatibilityFilter() {}
func (AbsoluteDateFilter) extendedFilter()      {}
func (AbsoluteDateFilter) filterItem()          {}
func (AbsoluteDateFilter) dateFilterItem()      {}

// MarshalJSON implements json.Marshaler for AbsoluteDateFilter.
func (f AbsoluteDateFilter) MarshalJSON() ([]byte, error) {
	type body AbsoluteDateFilter
	return union.Wrap(KeyAbsoluteDateFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for AbsoluteDateFilter.
func (f *AbsoluteDateFilter) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyAbsoluteDateFilter)
	if err != nil {
		return err
	}

	var aux struct {
		DataSet json.RawMessage `json:"dataSet"`
		From    string          `json:"from"`
		To      string          `json:"to"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("%s: %w", KeyAbsoluteDateFilter, err)
	}

	ds, err := optionalObjQualifier(KeyAbsoluteDateFilter+".dataSet", aux.DataSet)
	if err != nil {
		return err
	}

	*f = AbsoluteDateFilter{DataSet: ds, From: aux.From, To: aux.To}
	return nil
}

// RelativeDateFilter restricts a date data set to a range of periods relative
// to today, in units of Granularity (0 is the current period, -1 the previous one).
type RelativeDateFilter struct {
	DataSet     ObjQualifier `json:"dataSet" validate:"required"`
	Granularity string       `json:"granularity" validate:"required"`
	From        int          `json:"from"`
	To          int          `json:"to"`
}

func (RelativeDateFilter) compatibilityFilter() {}
func (RelativeDateFilter) extendedFilter()      {}
func (RelativeDateFilter) filterItem()          {}
func (RelativeDateFilter) dateFilterItem()      {}

// MarshalJSON implements json.Marshaler for RelativeDateFilter.
func (f RelativeDateFilter) MarshalJSON() ([]byte, error) {
	type body RelativeDateFilter
	return union.Wrap(KeyRelativeDateFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for RelativeDateFilter.
func (f *RelativeDateFilter) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyRelativeDateFilter)
	if err != nil {
		return err
	}

	var aux struct {
		DataSet     json.RawMessage `json:"dataSet"`
		Granularity string          `json:"granularity"`
		From        int             `json:"from"`
		To          int             `json:"to"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return fmt.Errorf("%s: %w", KeyRelativeDateFilter, err)
	}

	ds, err := optionalObjQualifier(KeyRelativeDateFilter+".dataSet", aux.DataSet)
	if err != nil {
		return err
	}

	*f = RelativeDateFilter{DataSet: ds, Granularity: aux.Granularity, From: aux.From, To: aux.To}
	return nil
}

// ExpressionFilter is the legacy raw-expression filter.
type ExpressionFilter struct {
	Value string `json:"value"`
}

func (ExpressionFilter) compatibilityFilter() {}

// MarshalJSON implements json.Marshaler for ExpressionFilter.
func (f ExpressionFilter) MarshalJSON() ([]byte, error) {
	type body ExpressionFilter
	return union.Wrap(KeyExpressionFilter, body(f))
}

// UnmarshalJSON implements json.Unmarshaler for ExpressionFilter.
func (f *ExpressionFilter) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyExpressionFilter)
	if err != nil {
		return err
	}
	type body ExpressionFilter
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyExpressionFilter, err)
	}
	*f = ExpressionFilter(b)
	return nil
}

// IsPositiveAttributeFilter reports whether f is a positive attribute filter.
func IsPositiveAttributeFilter(f CompatibilityFilter) bool {
	return union.Is[PositiveAttributeFilter](f)
}

// IsNegativeAttributeFilter reports whether f is a negative attribute filter.
func IsNegativeAttributeFilter(f CompatibilityFilter) bool {
	return union.Is[NegativeAttributeFilter](f)
}

// IsAttributeFilter reports whether f is a positive or negative attribute filter.
func IsAttributeFilter(f CompatibilityFilter) bool {
	return IsPositiveAttributeFilter(f) || IsNegativeAttributeFilter(f)
}

// IsAbsoluteDateFilter reports whether f is an absolute date filter.
func IsAbsoluteDateFilter(f CompatibilityFilter) bool {
	return union.Is[AbsoluteDateFilter](f)
}

// IsRelativeDateFilter reports whether f is a relative date filter.
func IsRelativeDateFilter(f CompatibilityFilter) bool {
	return union.Is[RelativeDateFilter](f)
}

// IsDateFilter reports whether f is an absolute or relative date filter.
func IsDateFilter(f CompatibilityFilter) bool {
	return IsAbsoluteDateFilter(f) || IsRelativeDateFilter(f)
}

// IsMeasureValueFilter reports whether f is a measure value filter.
func IsMeasureValueFilter(f CompatibilityFilter) bool {
	return union.Is[MeasureValueFilter](f)
}

// IsExpressionFilter reports whether f is the legacy expression filter.
func IsExpressionFilter(f CompatibilityFilter) bool {
	return union.Is[ExpressionFilter](f)
}

// UnmarshalCompatibilityFilter decodes any of the six filter shapes.
func UnmarshalCompatibilityFilter(data []byte) (CompatibilityFilter, error) {
	return decodeFilter("compatibilityFilter", data, compatibilityFilterKeys)
}

// UnmarshalExtendedFilter decodes any filter shape except the expression filter.
func UnmarshalExtendedFilter(data []byte) (ExtendedFilter, error) {
	f, err := decodeFilter("extendedFilter", data, extendedFilterKeys)
	if err != nil {
		return nil, err
	}
	ef, ok := f.(ExtendedFilter)
	if !ok {
		return nil, fmt.Errorf("extendedFilter: %T: %w", f, ErrUnknownVariant)
	}
	return ef, nil
}

// UnmarshalFilterItem decodes an attribute or date filter.
func UnmarshalFilterItem(data []byte) (FilterItem, error) {
	f, err := decodeFilter("filterItem", data, filterItemKeys)
	if err != nil {
		return nil, err
	}
	fi, ok := f.(FilterItem)
	if !ok {
		return nil, fmt.Errorf("filterItem: %T: %w", f, ErrUnknownVariant)
	}
	return fi, nil
}

func decodeFilter(name string, data []byte, keys []string) (CompatibilityFilter, error) {
	key, _, err := union.Discriminate(name, data, keys...)
	if err != nil {
		return nil, err
	}

	switch key {
	case KeyPositiveAttributeFilter:
		var f PositiveAttributeFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case KeyNegativeAttributeFilter:
		var f NegativeAttributeFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case KeyAbsoluteDateFilter:
		var f AbsoluteDateFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case KeyRelativeDateFilter:
		var f RelativeDateFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case KeyMeasureValueFilter:
		var f MeasureValueFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		var f ExpressionFilter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	}
}

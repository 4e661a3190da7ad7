package execution

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of Header.
const (
	KeyMeasureGroupHeader = "measureGroupHeader"
	KeyAttributeHeader    = "attributeHeader"
)

// Response is returned when an execution is accepted.
type Response struct {
	Dimensions []Dimension `json:"dimensions"`
	Links      Links       `json:"links"`
}

// MarshalJSON implements json.Marshaler for Response.
func (r Response) MarshalJSON() ([]byte, error) {
	type body Response
	r.Dimensions = union.NonNil(r.Dimensions)
	return json.Marshal(body(r))
}

// Links points at the result of an execution.
type Links struct {
	ExecutionResult string `json:"executionResult"`
}

// Dimension lists the headers of one result dimension.
type Dimension struct {
	Headers []Header `json:"headers"`
}

// MarshalJSON implements json.Marshaler for Dimension.
func (d Dimension) MarshalJSON() ([]byte, error) {
	type body Dimension
	d.Headers = union.NonNil(d.Headers)
	return json.Marshal(body(d))
}

// UnmarshalJSON implements json.Unmarshaler for Dimension.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var aux struct {
		Headers []json.RawMessage `json:"headers"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("dimension: %w", err)
	}

	var headers []Header
	if aux.Headers != nil {
		headers = make([]Header, len(aux.Headers))
		for i, raw := range aux.Headers {
			h, err := UnmarshalHeader(raw)
			if err != nil {
				return fmt.Errorf("dimension.headers[%d]: %w", i, err)
			}
			headers[i] = h
		}
	}

	*d = Dimension{Headers: headers}
	return nil
}

// Header is MeasureGroupHeader or AttributeHeader.
type Header interface {
	header()
}

// MeasureGroupHeader describes the measures laid out on a dimension.
type MeasureGroupHeader struct {
	Items      []MeasureHeader   `json:"items"`
	TotalItems []TotalHeaderItem `json:"totalItems,omitempty"`
}

func (MeasureGroupHeader) header() {}

// MarshalJSON implements json.Marshaler for MeasureGroupHeader.
func (h MeasureGroupHeader) MarshalJSON() ([]byte, error) {
	type body MeasureGroupHeader
	h.Items = union.NonNil(h.Items)
	return union.Wrap(KeyMeasureGroupHeader, body(h))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureGroupHeader.
func (h *MeasureGroupHeader) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureGroupHeader)
	if err != nil {
		return err
	}
	type body MeasureGroupHeader
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureGroupHeader, err)
	}
	*h = MeasureGroupHeader(b)
	return nil
}

// MeasureHeader describes one measure of a MeasureGroupHeader. It is
// wrapped under measureHeaderItem on the wire.
type MeasureHeader struct {
	Name            string `json:"name"`
	Format          string `json:"format"`
	LocalIdentifier string `json:"localIdentifier"`
	URI             string `json:"uri,omitempty"`
	Identifier      string `json:"identifier,omitempty"`
}

// MarshalJSON implements json.Marshaler for MeasureHeader.
func (h MeasureHeader) MarshalJSON() ([]byte, error) {
	type body MeasureHeader
	return union.Wrap(KeyMeasureHeaderItem, body(h))
}

// UnmarshalJSON implements json.Unmarshaler for MeasureHeader.
func (h *MeasureHeader) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyMeasureHeaderItem)
	if err != nil {
		return err
	}
	type body MeasureHeader
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyMeasureHeaderItem, err)
	}
	*h = MeasureHeader(b)
	return nil
}

// AttributeHeader describes an attribute laid out on a dimension.
type AttributeHeader struct {
	Name            string            `json:"name"`
	LocalIdentifier string            `json:"localIdentifier"`
	URI             string            `json:"uri"`
	Identifier      string            `json:"identifier"`
	FormOf          FormOf            `json:"formOf"`
	TotalItems      []TotalHeaderItem `json:"totalItems,omitempty"`
}

func (AttributeHeader) header() {}

// FormOf names the attribute a display form belongs to.
type FormOf struct {
	Name       string `json:"name"`
	URI        string `json:"uri"`
	Identifier string `json:"identifier"`
}

// MarshalJSON implements json.Marshaler for AttributeHeader.
func (h AttributeHeader) MarshalJSON() ([]byte, error) {
	type body AttributeHeader
	return union.Wrap(KeyAttributeHeader, body(h))
}

// UnmarshalJSON implements json.Unmarshaler for AttributeHeader.
func (h *AttributeHeader) UnmarshalJSON(data []byte) error {
	raw, err := union.Unwrap(data, KeyAttributeHeader)
	if err != nil {
		return err
	}
	type body AttributeHeader
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return fmt.Errorf("%s: %w", KeyAttributeHeader, err)
	}
	*h = AttributeHeader(b)
	return nil
}

// IsMeasureGroupHeader reports whether h is a measure group header.
func IsMeasureGroupHeader(h Header) bool {
	return union.Is[MeasureGroupHeader](h)
}

// IsAttributeHeader reports whether h is an attribute header.
func IsAttributeHeader(h Header) bool {
	return union.Is[AttributeHeader](h)
}

// UnmarshalHeader decodes a measure group or attribute header.
func UnmarshalHeader(data []byte) (Header, error) {
	key, _, err := union.Discriminate("header", data, KeyMeasureGroupHeader, KeyAttributeHeader)
	if err != nil {
		return nil, err
	}

	if key == KeyMeasureGroupHeader {
		var h MeasureGroupHeader
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, err
		}
		return h, nil
	}

	var h AttributeHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return h, nil
}

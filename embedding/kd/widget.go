package kd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Widget types.
const (
	WidgetTypeKpi     = "kpi"
	WidgetTypeInsight = "insight"
)

// ErrUnknownWidget is returned when a widget type is neither kpi nor insight.
var ErrUnknownWidget = errors.New("unknown widget type")

// Widget is KpiWidget or InsightWidget, told apart by the "type" field.
type Widget interface {
	widget()
}

// KpiWidget adds an empty KPI for the user to configure.
type KpiWidget struct{}

func (KpiWidget) widget() {}

// MarshalJSON implements json.Marshaler for KpiWidget.
func (KpiWidget) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{Type: WidgetTypeKpi})
}

// InsightWidget adds a saved insight.
type InsightWidget struct {
	Ref InsightRef
}

func (InsightWidget) widget() {}

// MarshalJSON implements json.Marshaler for InsightWidget.
func (w InsightWidget) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string     `json:"type"`
		Ref  InsightRef `json:"ref,omitempty"`
	}{Type: WidgetTypeInsight, Ref: w.Ref})
}

// InsightRef references a saved insight by identifier or by URI.
type InsightRef interface {
	insightRef()
}

// IdentifierInsightRef references an insight by identifier.
type IdentifierInsightRef struct {
	Identifier string `json:"identifier"`
}

func (IdentifierInsightRef) insightRef() {}

// URIInsightRef references an insight by URI.
type URIInsightRef struct {
	URI string `json:"uri"`
}

func (URIInsightRef) insightRef() {}

// IsKpiWidget reports whether w is a KPI widget.
func IsKpiWidget(w Widget) bool {
	return union.Is[KpiWidget](w)
}

// IsInsightWidget reports whether w is an insight widget.
func IsInsightWidget(w Widget) bool {
	return union.Is[InsightWidget](w)
}

// IsIdentifierInsightRef reports whether r references an insight by identifier.
func IsIdentifierInsightRef(r InsightRef) bool {
	return union.Is[IdentifierInsightRef](r)
}

// IsURIInsightRef reports whether r references an insight by URI.
func IsURIInsightRef(r InsightRef) bool {
	return union.Is[URIInsightRef](r)
}

// UnmarshalInsightRef decodes {"identifier": ...} or {"uri": ...}.
func UnmarshalInsightRef(data []byte) (InsightRef, error) {
	key, obj, err := union.Discriminate("insightRef", data, "identifier", "uri")
	if err != nil {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(obj[key], &s); err != nil {
		return nil, fmt.Errorf("insightRef.%s: %w", key, err)
	}
	if key == "identifier" {
		return IdentifierInsightRef{Identifier: s}, nil
	}
	return URIInsightRef{URI: s}, nil
}

// UnmarshalWidget decodes a widget by its "type" field.
func UnmarshalWidget(data []byte) (Widget, error) {
	var aux struct {
		Type string          `json:"type"`
		Ref  json.RawMessage `json:"ref"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("widget: %w", err)
	}

	switch aux.Type {
	case WidgetTypeKpi:
		return KpiWidget{}, nil
	case WidgetTypeInsight:
		w := InsightWidget{}
		if !union.Absent(aux.Ref) {
			ref, err := UnmarshalInsightRef(aux.Ref)
			if err != nil {
				return nil, fmt.Errorf("widget.ref: %w", err)
			}
			w.Ref = ref
		}
		return w, nil
	default:
		return nil, fmt.Errorf("widget: %q: %w", aux.Type, ErrUnknownWidget)
	}
}

package lint

import (
	"fmt"

	"github.com/roach88/afmkit/afm"
)

// as returns the value of v when it holds a T or a non-nil *T.
func as[T any](v any) (T, bool) {
	switch x := v.(type) {
	case T:
		return x, true
	case *T:
		if x != nil {
			return *x, true
		}
	}
	var zero T
	return zero, false
}

func (l *linter) refMeasure(field, id string) {
	if id == "" {
		return
	}
	if !l.measures[id] {
		l.add(ErrUnresolvedRef, field, "measure %q is not defined", id)
	}
}

func (l *linter) refAttribute(field, id string) {
	if id == "" {
		return
	}
	if !l.attributes[id] {
		l.add(ErrUnresolvedRef, field, "attribute %q is not defined", id)
	}
}

func (l *linter) checkMeasures(a afm.AFM) {
	for i, m := range a.Measures {
		field := fmt.Sprintf("afm.measures[%d].definition", i)

		if sm, ok := as[afm.SimpleMeasure](m.Definition); ok {
			if sm.Aggregation != "" && !sm.Aggregation.Valid() {
				l.add(ErrInvalidEnum, field+".aggregation", "unknown aggregation %q", sm.Aggregation)
			}
			for j, f := range sm.Filters {
				l.checkFilter(fmt.Sprintf("%s.filters[%d]", field, j), f)
			}
			continue
		}

		if am, ok := as[afm.ArithmeticMeasure](m.Definition); ok {
			l.checkArithmetic(field, am)
			continue
		}

		if pm, ok := as[afm.PopMeasure](m.Definition); ok {
			l.refMeasure(field+".measureIdentifier", pm.MeasureIdentifier)
			continue
		}

		if pp, ok := as[afm.PreviousPeriodMeasure](m.Definition); ok {
			l.refMeasure(field+".measureIdentifier", pp.MeasureIdentifier)
		}
	}
}

func (l *linter) checkArithmetic(field string, am afm.ArithmeticMeasure) {
	if am.Operator != "" && !am.Operator.Valid() {
		l.add(ErrInvalidEnum, field+".operator", "unknown arithmetic operator %q", am.Operator)
	}

	n := len(am.MeasureIdentifiers)
	switch {
	case am.Operator.Binary() && n != 2:
		l.add(ErrOperandCount, field+".measureIdentifiers", "operator %q takes exactly 2 operands, got %d", am.Operator, n)
	case !am.Operator.Binary() && n < 2:
		l.add(ErrOperandCount, field+".measureIdentifiers", "arithmetic measure needs at least 2 operands, got %d", n)
	}

	for j, id := range am.MeasureIdentifiers {
		l.refMeasure(fmt.Sprintf("%s.measureIdentifiers[%d]", field, j), id)
	}
}

func (l *linter) checkFilters(field string, filters []afm.CompatibilityFilter) {
	for i, f := range filters {
		l.checkFilter(fmt.Sprintf("%s[%d]", field, i), f)
	}
}

// checkFilter inspects one filter. Attribute, date and expression filters
// reference backend objects only, so only measure value filters can dangle.
func (l *linter) checkFilter(field string, f any) {
	mvf, ok := as[afm.MeasureValueFilter](f)
	if !ok {
		return
	}

	if q, ok := as[afm.LocalIdentifierQualifier](mvf.Measure); ok {
		l.refMeasure(field+".measure", q.LocalIdentifier)
	}

	if c, ok := as[afm.ComparisonCondition](mvf.Condition); ok {
		if c.Operator != "" && !c.Operator.Valid() {
			l.add(ErrInvalidEnum, field+".condition.operator", "unknown comparison operator %q", c.Operator)
		}
	}
	if c, ok := as[afm.RangeCondition](mvf.Condition); ok {
		if c.Operator != "" && !c.Operator.Valid() {
			l.add(ErrInvalidEnum, field+".condition.operator", "unknown range operator %q", c.Operator)
		}
	}
}

func (l *linter) checkNativeTotals(totals []afm.NativeTotalItem) {
	for i, t := range totals {
		field := fmt.Sprintf("afm.nativeTotals[%d]", i)
		l.refMeasure(field+".measureIdentifier", t.MeasureIdentifier)
		for j, id := range t.AttributeIdentifiers {
			l.refAttribute(fmt.Sprintf("%s.attributeIdentifiers[%d]", field, j), id)
		}
	}
}

func (l *linter) checkResultSpec(rs afm.ResultSpec) {
	for i, d := range rs.Dimensions {
		field := fmt.Sprintf("resultSpec.dimensions[%d]", i)
		for j, id := range d.ItemIdentifiers {
			if id == afm.MeasureGroup {
				continue
			}
			l.refAttribute(fmt.Sprintf("%s.itemIdentifiers[%d]", field, j), id)
		}
		for j, t := range d.Totals {
			tf := fmt.Sprintf("%s.totals[%d]", field, j)
			l.refMeasure(tf+".measureIdentifier", t.MeasureIdentifier)
			l.refAttribute(tf+".attributeIdentifier", t.AttributeIdentifier)
			if t.Type != "" && !t.Type.Valid() {
				l.add(ErrInvalidEnum, tf+".type", "unknown total type %q", t.Type)
			}
		}
	}

	for i, s := range rs.Sorts {
		field := fmt.Sprintf("resultSpec.sorts[%d]", i)

		if ai, ok := as[afm.AttributeSortItem](s); ok {
			l.checkDirection(field, ai.Direction)
			l.refAttribute(field+".attributeIdentifier", ai.AttributeIdentifier)
			if ai.Aggregation != "" && !ai.Aggregation.Valid() {
				l.add(ErrInvalidEnum, field+".aggregation", "unknown sort aggregation %q", ai.Aggregation)
			}
			continue
		}

		if ms, ok := as[afm.MeasureSortItem](s); ok {
			l.checkDirection(field, ms.Direction)
			for j, loc := range ms.Locators {
				lf := fmt.Sprintf("%s.locators[%d]", field, j)
				if al, ok := as[afm.AttributeLocatorItem](loc); ok {
					l.refAttribute(lf+".attributeIdentifier", al.AttributeIdentifier)
				}
				if ml, ok := as[afm.MeasureLocatorItem](loc); ok {
					l.refMeasure(lf+".measureIdentifier", ml.MeasureIdentifier)
				}
			}
		}
	}
}

func (l *linter) checkDirection(field string, d afm.SortDirection) {
	if d != "" && !d.Valid() {
		l.add(ErrInvalidEnum, field+".direction", "unknown sort direction %q", d)
	}
}

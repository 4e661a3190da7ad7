// Package afm provides the Analytical Form Model (AFM): the declarative query
// sent to an analytics execution backend.
//
// An Execution pairs an AFM (what to compute) with an optional ResultSpec
// (how to shape the result). The AFM lists attributes to slice by, measures to
// compute, filters to restrict by and native totals.
//
// # Wire Shape
//
// Every union in the model is encoded with one discriminator key per
// variant, never with a "kind" field:
//
//	{"positiveAttributeFilter": {"displayForm": {"uri": "/gdc/md/p/obj/1"}, "in": ["a"]}}
//	{"measure": {"item": {"identifier": "m.amount"}, "aggregation": "sum"}}
//
// Key names are part of the backend contract and must not change.
//
// # Sealed Unions
//
// ObjQualifier, Qualifier, MeasureDefinition, CompatibilityFilter (and its
// narrower ExtendedFilter, FilterItem, DateFilterItem, AttributeFilterItem),
// MeasureValueFilterCondition, SortItem and LocatorItem are sealed interfaces
// using the marker method pattern. Only types in this package implement them,
// so a type switch over a union is exhaustive:
//
//	switch f := filter.(type) {
//	case afm.PositiveAttributeFilter:
//	case afm.NegativeAttributeFilter:
//	case afm.AbsoluteDateFilter:
//	case afm.RelativeDateFilter:
//	case afm.MeasureValueFilter:
//	case afm.ExpressionFilter:
//	}
//
// The IsX predicates exist for callers that prefer boolean narrowing. They
// never fail: nil interfaces and nil pointers report false, and nested fields
// are never inspected.
//
// # Decoding
//
// Each variant marshals itself under its discriminator key. Decoding goes the
// other way through UnmarshalObjQualifier, UnmarshalMeasureDefinition,
// UnmarshalCompatibilityFilter and friends, which look at the key set of the
// object and fail with ErrUnknownVariant when no key matches and
// ErrAmbiguousVariant when more than one does.
//
// # References
//
// Filters, sorts, totals and derived measures point at attributes and
// measures by localIdentifier. The types do not enforce that those references
// resolve; that is the caller's job ("afmctl validate" checks them).
package afm

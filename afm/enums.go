package afm

// SimpleMeasureAggregation is the aggregation applied by a simple measure.
type SimpleMeasureAggregation string

const (
	AggregationSum    SimpleMeasureAggregation = "sum"
	AggregationCount  SimpleMeasureAggregation = "count"
	AggregationAvg    SimpleMeasureAggregation = "avg"
	AggregationMin    SimpleMeasureAggregation = "min"
	AggregationMax    SimpleMeasureAggregation = "max"
	AggregationMedian SimpleMeasureAggregation = "median"
	AggregationRunSum SimpleMeasureAggregation = "runsum"
)

// Valid reports whether a is one of the known aggregations.
func (a SimpleMeasureAggregation) Valid() bool {
	switch a {
	case AggregationSum, AggregationCount, AggregationAvg, AggregationMin,
		AggregationMax, AggregationMedian, AggregationRunSum:
		return true
	}
	return false
}

// ArithmeticMeasureOperator combines the operands of an arithmetic measure.
type ArithmeticMeasureOperator string

const (
	ArithmeticSum            ArithmeticMeasureOperator = "sum"
	ArithmeticDifference     ArithmeticMeasureOperator = "difference"
	ArithmeticMultiplication ArithmeticMeasureOperator = "multiplication"
	ArithmeticRatio          ArithmeticMeasureOperator = "ratio"
	ArithmeticChange         ArithmeticMeasureOperator = "change"
)

// Valid reports whether o is one of the known operators.
func (o ArithmeticMeasureOperator) Valid() bool {
	switch o {
	case ArithmeticSum, ArithmeticDifference, ArithmeticMultiplication, ArithmeticRatio, ArithmeticChange:
		return true
	}
	return false
}

// Binary reports whether the operator takes exactly two operands.
func (o ArithmeticMeasureOperator) Binary() bool {
	return o == ArithmeticDifference || o == ArithmeticRatio || o == ArithmeticChange
}

// ComparisonConditionOperator is the operator of a comparison condition.
type ComparisonConditionOperator string

const (
	GreaterThan          ComparisonConditionOperator = "GREATER_THAN"
	GreaterThanOrEqualTo ComparisonConditionOperator = "GREATER_THAN_OR_EQUAL_TO"
	LessThan             ComparisonConditionOperator = "LESS_THAN"
	LessThanOrEqualTo    ComparisonConditionOperator = "LESS_THAN_OR_EQUAL_TO"
	EqualTo              ComparisonConditionOperator = "EQUAL_TO"
	NotEqualTo           ComparisonConditionOperator = "NOT_EQUAL_TO"
)

// Valid reports whether o is one of the six comparison operators.
func (o ComparisonConditionOperator) Valid() bool {
	switch o {
	case GreaterThan, GreaterThanOrEqualTo, LessThan, LessThanOrEqualTo, EqualTo, NotEqualTo:
		return true
	}
	return false
}

// RangeConditionOperator is the operator of a range condition.
type RangeConditionOperator string

const (
	Between    RangeConditionOperator = "BETWEEN"
	NotBetween RangeConditionOperator = "NOT_BETWEEN"
)

// Valid reports whether o is BETWEEN or NOT_BETWEEN.
func (o RangeConditionOperator) Valid() bool {
	return o == Between || o == NotBetween
}

// TotalType is the aggregation used for a total row.
type TotalType string

const (
	TotalSum TotalType = "sum"
	TotalAvg TotalType = "avg"
	TotalMax TotalType = "max"
	TotalMin TotalType = "min"
	TotalNat TotalType = "nat"
	TotalMed TotalType = "med"
)

// Valid reports whether t is one of the known total types.
func (t TotalType) Valid() bool {
	switch t {
	case TotalSum, TotalAvg, TotalMax, TotalMin, TotalNat, TotalMed:
		return true
	}
	return false
}

// SortDirection orders a sort item.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Valid reports whether d is asc or desc.
func (d SortDirection) Valid() bool {
	return d == Asc || d == Desc
}

// SortAggregation sorts attribute elements by an aggregated value instead of by name.
type SortAggregation string

// SortAggregationSum is the only sort aggregation.
const SortAggregationSum SortAggregation = "sum"

// Valid reports whether a is the known sort aggregation.
func (a SortAggregation) Valid() bool {
	return a == SortAggregationSum
}

// Common relative date filter granularities. Granularity is an open string;
// these are the values the backend ships with.
const (
	GranularityDate      = "GDC.time.date"
	GranularityWeek      = "GDC.time.week_us"
	GranularityMonth     = "GDC.time.month"
	GranularityQuarter   = "GDC.time.quarter"
	GranularityYear      = "GDC.time.year"
	GranularityDayOfWeek = "GDC.time.day_in_week"
)

// MeasureGroup is the reserved item identifier that places measures on a dimension.
const MeasureGroup = "measureGroup"

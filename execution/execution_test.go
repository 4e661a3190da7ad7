package execution_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/afmkit/afm"
	"github.com/roach88/afmkit/execution"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestResponse_RoundTrip(t *testing.T) {
	data := readFixture(t, "response.json")

	var resp execution.Response
	require.NoError(t, json.Unmarshal(data, &resp))

	require.Len(t, resp.Dimensions, 2)
	require.Len(t, resp.Dimensions[0].Headers, 1)
	attr, ok := resp.Dimensions[0].Headers[0].(execution.AttributeHeader)
	require.True(t, ok)
	assert.Equal(t, "a1", attr.LocalIdentifier)
	assert.Equal(t, "attr.region", attr.FormOf.Identifier)
	assert.Equal(t, []execution.TotalHeaderItem{{Name: "sum"}}, attr.TotalItems)

	group, ok := resp.Dimensions[1].Headers[0].(execution.MeasureGroupHeader)
	require.True(t, ok)
	require.Len(t, group.Items, 2)
	assert.Equal(t, "m2", group.Items[1].LocalIdentifier)
	assert.Equal(t, "metric.cost", group.Items[1].Identifier)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))
}

func TestResult_RoundTrip(t *testing.T) {
	data := readFixture(t, "result.json")

	var res execution.Result
	require.NoError(t, json.Unmarshal(data, &res))

	require.Len(t, res.HeaderItems, 2)
	assert.Equal(t, execution.AttributeHeaderItem{URI: "/gdc/md/p1/obj/42/elements?id=2", Name: "West"}, res.HeaderItems[0][0][1])
	assert.Equal(t, execution.MeasureHeaderItem{Name: "Cost", Order: 1}, res.HeaderItems[1][0][1])
	assert.Equal(t, []int{2, 2}, res.Paging.Total)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))
}

func TestResult_OptionalSections(t *testing.T) {
	var res execution.Result
	require.NoError(t, json.Unmarshal([]byte(`{"data":[],"totals":null,"paging":{"count":[0],"offset":[0],"total":[0]}}`), &res))
	assert.Nil(t, res.HeaderItems)
	assert.Nil(t, res.Totals)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"paging":{"count":[0],"offset":[0],"total":[0]}}`, string(out))
}

func TestHeaderPredicates(t *testing.T) {
	headers := map[string]execution.Header{
		"attribute":    execution.AttributeHeader{LocalIdentifier: "a1"},
		"measureGroup": &execution.MeasureGroupHeader{},
	}
	for name, h := range headers {
		assert.Equal(t, name == "attribute", execution.IsAttributeHeader(h), name)
		assert.Equal(t, name == "measureGroup", execution.IsMeasureGroupHeader(h), name)
	}

	assert.False(t, execution.IsAttributeHeader(nil))
	assert.False(t, execution.IsMeasureGroupHeader((*execution.MeasureGroupHeader)(nil)))
}

func TestResultHeaderItemPredicates(t *testing.T) {
	items := map[string]execution.ResultHeaderItem{
		"attribute": execution.AttributeHeaderItem{Name: "East"},
		"measure":   execution.MeasureHeaderItem{Name: "Revenue"},
		"total":     execution.TotalHeaderItem{Name: "sum", Type: string(afm.TotalSum)},
	}
	for name, item := range items {
		assert.Equal(t, name == "attribute", execution.IsAttributeHeaderItem(item), name)
		assert.Equal(t, name == "measure", execution.IsMeasureHeaderItem(item), name)
		assert.Equal(t, name == "total", execution.IsTotalHeaderItem(item), name)
	}

	assert.False(t, execution.IsAttributeHeaderItem(nil))
	assert.False(t, execution.IsMeasureHeaderItem(nil))
	assert.False(t, execution.IsTotalHeaderItem(nil))
}

func TestUnmarshalHeader_Errors(t *testing.T) {
	_, err := execution.UnmarshalHeader([]byte(`{}`))
	assert.ErrorIs(t, err, afm.ErrUnknownVariant)

	_, err = execution.UnmarshalHeader([]byte(`{"attributeHeader":{},"measureGroupHeader":{}}`))
	assert.ErrorIs(t, err, afm.ErrAmbiguousVariant)

	_, err = execution.UnmarshalResultHeaderItem([]byte(`{"totalHeaderItem":{},"measureHeaderItem":{}}`))
	assert.ErrorIs(t, err, afm.ErrAmbiguousVariant)
}

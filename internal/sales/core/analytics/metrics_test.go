package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_SingleOrder(t *testing.T) {
	m := Summarize(table(rec("1", "A", "2", "10", "2024-01-05T10:00:00", "1 Main St, Springfield, IL")).Orders)

	assert.Equal(t, "20", m.TotalRevenue.String())
	assert.Equal(t, int64(1), m.TotalOrders)
	assert.Equal(t, "20", m.AverageOrderValue.String())
	assert.Equal(t, "2", m.TotalUnits.String())
}

func TestSummarize_DistinctOrdersAndNullValues(t *testing.T) {
	orders := table(
		rec("1", "A", "1", "10", "2019-01-01 10:00:00", ""),
		rec("1", "B", "3", "10", "2019-01-01 10:00:00", ""),
		rec("2", "C", "1", "N/A", "2019-01-01 10:00:00", ""),
		rec("", "D", "N/A", "7", "2019-01-01 10:00:00", ""),
	).Orders

	m := Summarize(orders)
	assert.Equal(t, "40", m.TotalRevenue.String())
	assert.Equal(t, int64(2), m.TotalOrders, "an id with a null total still counts")
	assert.Equal(t, "20", m.AverageOrderValue.String())
	assert.Equal(t, "5", m.TotalUnits.String())
}

func TestSummarize_Empty(t *testing.T) {
	m := Summarize(nil)
	assert.True(t, m.TotalRevenue.IsZero())
	assert.Zero(t, m.TotalOrders)
	assert.True(t, m.AverageOrderValue.IsZero())
	assert.True(t, m.TotalUnits.IsZero())
}

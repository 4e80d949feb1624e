package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.AQIConversions.WithLabelValues("pm25", "converted").Inc()
	a.AQIConversions.WithLabelValues("pm25", "converted").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(a.AQIConversions.WithLabelValues("pm25", "converted")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.AQIConversions.WithLabelValues("pm25", "converted")), 0)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/vaults/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "/vaults/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vaults/42", nil))

	// 计数标签用路由模板, 不是原始路径
	after := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "/vaults/:id", "200"))
	if after != before+1 {
		t.Errorf("request counter: got %v, want %v", after, before+1)
	}

	if got := testutil.CollectAndCount(requestDuration); got == 0 {
		t.Error("duration histogram recorded no observations")
	}
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())

	before := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "unmatched", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	after := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "unmatched", "404"))
	if after != before+1 {
		t.Errorf("request counter: got %v, want %v", after, before+1)
	}
}

package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"commissions/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "goroutine?debug=1"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, controller.PprofPrefix+path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, http.StatusOK, res.StatusCode)
			require.NotEmpty(t, res.Header.Get("Content-Type"))
		})
	}
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cmdline", nil)
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Result().StatusCode)
}

package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockfront/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporteWorker_Procesar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/report/stockout", r.URL.Path)
		w.Write([]byte("contenido del reporte"))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	w := NewReporteWorker(report.NuevoCliente(srv.URL+"/report", dir, 5*time.Second))

	payload, err := json.Marshal(ReporteJob{ID: "job-1", Tipo: report.TipoStockout})
	require.NoError(t, err)
	require.NoError(t, w.procesar(context.Background(), payload))

	data, err := os.ReadFile(filepath.Join(dir, "Reporte-Stockout"))
	require.NoError(t, err)
	assert.Equal(t, "contenido del reporte", string(data))
}

func TestReporteWorker_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	w := NewReporteWorker(report.NuevoCliente(srv.URL+"/report", t.TempDir(), 5*time.Second))
	payload, _ := json.Marshal(ReporteJob{ID: "job-2", Tipo: report.TipoGeneral})
	assert.Error(t, w.procesar(context.Background(), payload))
}

func TestReporteWorker_PayloadInvalido(t *testing.T) {
	w := NewReporteWorker(report.NuevoCliente("http://localhost:0", t.TempDir(), time.Second))
	assert.Error(t, w.procesar(context.Background(), json.RawMessage(`{no es json`)))
}

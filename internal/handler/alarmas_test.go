package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockfront/internal/model"
	"stockfront/internal/resource"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func montarAlarmas(t *testing.T, insumosCaido bool) *gin.Engine {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /alarma-insumo", func(w http.ResponseWriter, r *http.Request) {
		if insumosCaido {
			http.Error(w, "caido", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode([]model.AlarmaInsumo{
			{ID: 1, InsumoID: 10, TipoAlarma: 1, Fecha: "2024-06-01"},
		})
	})
	mux.HandleFunc("GET /alarma-producto", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.AlarmaProducto{
			{ID: 2, ProductoID: 20, TipoAlarma: 2, Fecha: "2024-06-02"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	insumos := resource.NuevoCliente[model.AlarmaInsumo]("alarma-insumo",
		srv.URL+"/alarma-insumo", resource.Rutas{}, 5*time.Second, nil)
	productos := resource.NuevoCliente[model.AlarmaProducto]("alarma-producto",
		srv.URL+"/alarma-producto", resource.Rutas{}, 5*time.Second, nil)

	r := gin.New()
	r.GET("/v1/alarmas", NuevasAlarmas(insumos, productos).Listar)
	return r
}

func TestAlarmas_CombinaAmbasFuentes(t *testing.T) {
	r := montarAlarmas(t, false)
	w := hacer(r, http.MethodGet, "/v1/alarmas", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total    int      `json:"total"`
		Alarmas  []Alarma `json:"alarmas"`
		Obsoleto bool     `json:"obsoleto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.False(t, resp.Obsoleto)

	assert.Equal(t, "insumo", resp.Alarmas[0].Origen)
	assert.Equal(t, int64(10), resp.Alarmas[0].EntidadID)
	assert.Equal(t, "stockout", resp.Alarmas[0].Tipo)

	assert.Equal(t, "producto", resp.Alarmas[1].Origen)
	assert.Equal(t, "sobreabastecimiento", resp.Alarmas[1].Tipo)
}

func TestAlarmas_UnaFuenteCaida(t *testing.T) {
	r := montarAlarmas(t, true)
	w := hacer(r, http.MethodGet, "/v1/alarmas", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total    int  `json:"total"`
		Obsoleto bool `json:"obsoleto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total, "la fuente sana se sirve igual")
	assert.True(t, resp.Obsoleto)
}

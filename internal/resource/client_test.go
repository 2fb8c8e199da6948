package resource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

var rutasCompletas = Rutas{
	Crear:      "/save",
	Actualizar: "/update/%d",
	Eliminar:   "/delete/%d",
	Buscar:     "/findByInsumoId/%d",
}

func clienteDePrueba(t *testing.T, h http.HandlerFunc, rutas Rutas) (*Cliente[registro], *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NuevoCliente[registro]("prueba", srv.URL+"/recurso", rutas, 5*time.Second, nil), srv
}

func TestListar_DecodificaRespuesta(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/recurso", r.URL.Path)
		json.NewEncoder(w).Encode([]registro{{ID: 1, Nombre: "uno"}, {ID: 2, Nombre: "dos"}})
	}, rutasCompletas)

	filas, err := c.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "dos", filas[1].Nombre)
}

func TestCrear_UsaRutaSave(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recurso/save", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in registro
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 7 // server-assigned id
		json.NewEncoder(w).Encode(in)
	}, rutasCompletas)

	creado, err := c.Crear(context.Background(), registro{Nombre: "nuevo"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), creado.ID)
}

func TestActualizar_RutaConID(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/recurso/update/9", r.URL.Path)
		json.NewEncoder(w).Encode(registro{ID: 9, Nombre: "editado"})
	}, rutasCompletas)

	_, err := c.Actualizar(context.Background(), 9, registro{ID: 9, Nombre: "editado"})
	require.NoError(t, err)
}

func TestEliminar_RutaConID(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/recurso/delete/4", r.URL.Path)
		w.WriteHeader(http.StatusOK) // no body required
	}, rutasCompletas)

	require.NoError(t, c.Eliminar(context.Background(), 4))
}

func TestBuscar_NoEncontrado(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recurso/findByInsumoId/3", r.URL.Path)
		http.Error(w, "no existe", http.StatusNotFound)
	}, rutasCompletas)

	_, err := c.Buscar(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, EsNoEncontrado(err))

	var he *ErrorHTTP
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Contains(t, he.Cuerpo, "no existe")
}

func TestErrorDeTransporte_NoEsErrorHTTP(t *testing.T) {
	c, srv := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {}, rutasCompletas)
	srv.Close() // connection refused from now on

	_, err := c.Listar(context.Background())
	require.Error(t, err)
	var he *ErrorHTTP
	assert.False(t, errors.As(err, &he))
	assert.False(t, EsNoEncontrado(err))
}

func TestOperacionNoConfigurada(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("el backend no debe recibir llamadas")
	}, Rutas{SinListado: true})

	_, err := c.Listar(context.Background())
	assert.ErrorIs(t, err, ErrNoSoportado)
	_, err = c.Crear(context.Background(), registro{})
	assert.ErrorIs(t, err, ErrNoSoportado)
	err = c.Eliminar(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoSoportado)
}

func TestBreakerCompartido_IgnoraRespuestas4xx(t *testing.T) {
	b := NuevoBreaker(BreakerConfig{UmbralFallos: 3, TiempoAbierto: time.Minute})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no existe", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	c := NuevoCliente[registro]("limite", srv.URL+"/limite", rutasCompletas, 5*time.Second, b)

	// repeated lookups of entities without a limit record answer 404; the
	// backend is healthy and the breaker must stay closed
	for i := 0; i < 5; i++ {
		_, err := c.Buscar(context.Background(), int64(i))
		require.Error(t, err)
		assert.True(t, EsNoEncontrado(err))
	}
	assert.Equal(t, BreakerCerrado, b.Estado())

	// the next lookup still reaches the backend and keeps its defined result
	_, err := c.Buscar(context.Background(), 99)
	assert.True(t, EsNoEncontrado(err))
}

func TestBreakerCompartido_AbrePor5xx(t *testing.T) {
	b := NuevoBreaker(BreakerConfig{UmbralFallos: 2, TiempoAbierto: time.Minute})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NuevoCliente[registro]("insumo", srv.URL+"/recurso", rutasCompletas, 5*time.Second, b)

	for i := 0; i < 2; i++ {
		_, err := c.Listar(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, BreakerAbierto, b.Estado())

	_, err := c.Listar(context.Background())
	assert.ErrorIs(t, err, ErrBreakerAbierto)
}

func TestBreakerCompartido_AbrePorErroresDeTransporte(t *testing.T) {
	b := NuevoBreaker(BreakerConfig{UmbralFallos: 2, TiempoAbierto: time.Minute})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NuevoCliente[registro]("insumo", srv.URL+"/recurso", rutasCompletas, 5*time.Second, b)

	for i := 0; i < 2; i++ {
		_, err := c.Listar(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, BreakerAbierto, b.Estado())
}

func TestCliente_NoReintenta(t *testing.T) {
	llamadas := 0
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		http.Error(w, "boom", http.StatusInternalServerError)
	}, rutasCompletas)

	_, err := c.Listar(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, llamadas)
}

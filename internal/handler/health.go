package handler

import (
	"net/http"

	"stockfront/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HealthHandler answers liveness with the breaker state of each backend and
// the Redis connection. The gateway itself is up as long as it can answer;
// degraded backends show through the estados map.
type HealthHandler struct {
	rdb     *redis.Client
	estados map[string]func() string // backend name -> breaker state
}

func NuevoHealth(rdb *redis.Client, estados map[string]func() string) *HealthHandler {
	return &HealthHandler{rdb: rdb, estados: estados}
}

func (h *HealthHandler) Check(c *gin.Context) {
	backends := make(map[string]string, len(h.estados))
	for nombre, estado := range h.estados {
		backends[nombre] = estado()
	}

	redisEstado := "ok"
	var dlq int64
	if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		redisEstado = "sin conexion"
	} else {
		// failed report jobs waiting for manual inspection
		dlq, _ = worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueReportes)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"backends":     backends,
		"redis":        redisEstado,
		"dlq_reportes": dlq,
	})
}

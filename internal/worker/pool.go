package worker

import (
	"context"
	"encoding/json"
	"time"

	"stockfront/internal/report"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueReportes = "jobs:reportes"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReporteJob asks a worker to download one backend report. Report files can
// take the backend a while to render, so the gateway answers immediately
// with the job id and the download happens here.
type ReporteJob struct {
	ID         string            `json:"id"`
	Tipo       report.Tipo       `json:"tipo"`
	Parametros report.Parametros `json:"parametros"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReporte pushes a report-download job to Redis.
func (d *Dispatcher) EnqueueReporte(ctx context.Context, trabajo ReporteJob) error {
	data, err := json.Marshal(trabajo)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: "reporte", Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueReportes, encoded).Err()
}

// ReporteWorker executes the download job through the report client.
type ReporteWorker struct {
	cliente *report.Cliente
}

func NewReporteWorker(cliente *report.Cliente) *ReporteWorker {
	return &ReporteWorker{cliente: cliente}
}

func (w *ReporteWorker) procesar(ctx context.Context, payload json.RawMessage) error {
	var trabajo ReporteJob
	if err := json.Unmarshal(payload, &trabajo); err != nil {
		return err
	}
	ruta, err := w.cliente.Descargar(ctx, trabajo.Tipo, trabajo.Parametros)
	if err != nil {
		return err
	}
	log.Info().Str("job_id", trabajo.ID).Str("tipo", string(trabajo.Tipo)).
		Str("archivo", ruta).Msg("reporte descargado")
	return nil
}

// WorkerHandlers groups the per-type job handlers wired at the composition
// root.
type WorkerHandlers struct {
	Reportes *ReporteWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the job queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool iniciado con %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d terminando", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueReportes).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("no se pudo deserializar el job")
		return
	}

	switch job.Type {
	case "reporte":
		// One attempt only — no operation in this system is retried. A
		// failed download goes straight to the DLQ for manual inspection.
		if err := handlers.Reportes.procesar(ctx, job.Payload); err != nil {
			log.Error().Str("queue", queue).Err(err).Msg("fallo el job de reporte")
			SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), 1)
		}
	default:
		log.Warn().Str("type", job.Type).Msg("tipo de job desconocido")
	}
}

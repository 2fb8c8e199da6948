package resource

// Circuit breaker (Closed → Open → Half-Open) guarding one backend service.
// The inventory backends share hosts, so one breaker is shared by every
// client pointed at the same host; when a backend is down the gateway
// fast-fails instead of stacking 30s timeouts. The breaker never retries —
// it only refuses calls while open.

import (
	"errors"
	"sync"
	"time"
)

// EstadoBreaker represents the current breaker state.
type EstadoBreaker int

const (
	BreakerCerrado   EstadoBreaker = iota // normal — requests flow
	BreakerAbierto                        // tripped — fast-fail all requests
	BreakerSondeando                      // half-open — one probe allowed
)

// String returns a human-readable state name (for the health endpoint).
func (s EstadoBreaker) String() string {
	switch s {
	case BreakerCerrado:
		return "cerrado"
	case BreakerAbierto:
		return "abierto"
	case BreakerSondeando:
		return "sondeando"
	default:
		return "desconocido"
	}
}

// ErrBreakerAbierto is returned when Ejecutar is called while the breaker is open.
var ErrBreakerAbierto = errors.New("circuit breaker abierto")

// BreakerConfig holds tunable parameters.
type BreakerConfig struct {
	UmbralFallos  int           // consecutive failures to trip open
	UmbralExitos  int           // consecutive successes in half-open to close
	TiempoAbierto time.Duration // how long to stay open before probing
}

// Breaker implements the pattern with thread-safe state transitions.
type Breaker struct {
	mu            sync.Mutex
	estado        EstadoBreaker
	fallos        int
	exitos        int
	ultimoFallo   time.Time
	umbralFallos  int
	umbralExitos  int
	tiempoAbierto time.Duration
}

// NuevoBreaker creates a breaker in the closed state.
func NuevoBreaker(cfg BreakerConfig) *Breaker {
	if cfg.UmbralFallos <= 0 {
		cfg.UmbralFallos = 5
	}
	if cfg.UmbralExitos <= 0 {
		cfg.UmbralExitos = 2
	}
	if cfg.TiempoAbierto <= 0 {
		cfg.TiempoAbierto = 60 * time.Second
	}
	return &Breaker{
		estado:        BreakerCerrado,
		umbralFallos:  cfg.UmbralFallos,
		umbralExitos:  cfg.UmbralExitos,
		tiempoAbierto: cfg.TiempoAbierto,
	}
}

// Estado returns the current state (safe for concurrent reads).
func (b *Breaker) Estado() EstadoBreaker {
	b.mu.Lock()
	defer b.mu.Unlock()
	// Auto-transition abierto → sondeando once the open window elapsed
	if b.estado == BreakerAbierto && time.Since(b.ultimoFallo) >= b.tiempoAbierto {
		b.estado = BreakerSondeando
		b.exitos = 0
	}
	return b.estado
}

// Ejecutar runs fn through the breaker.
// Returns ErrBreakerAbierto immediately if the breaker is open.
func (b *Breaker) Ejecutar(fn func() error) error {
	if b.Estado() == BreakerAbierto {
		return ErrBreakerAbierto
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.alFallar()
		return err
	}
	b.alAcertar()
	return nil
}

// alFallar records a failure (must be called under lock).
func (b *Breaker) alFallar() {
	b.fallos++
	b.ultimoFallo = time.Now()

	switch b.estado {
	case BreakerCerrado:
		if b.fallos >= b.umbralFallos {
			b.estado = BreakerAbierto
			b.exitos = 0
		}
	case BreakerSondeando:
		// Probe failed — back to open
		b.estado = BreakerAbierto
		b.fallos = 0
	}
}

// alAcertar records a success (must be called under lock).
func (b *Breaker) alAcertar() {
	switch b.estado {
	case BreakerCerrado:
		b.fallos = 0
	case BreakerSondeando:
		b.exitos++
		if b.exitos >= b.umbralExitos {
			b.estado = BreakerCerrado
			b.fallos = 0
			b.exitos = 0
		}
	}
}

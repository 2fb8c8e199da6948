package controller

import "stockfront/internal/schema"

// TipoResultado classifies the outcome of a controller operation. The
// presentation layer decides how to render each variant; business logic
// never triggers a notification itself.
type TipoResultado int

const (
	ResultadoCreado TipoResultado = iota
	// ResultadoCreadoSinLimite: the entity was persisted but the dependent
	// stock-limit creation failed. There is no rollback; downstream limit
	// lookups must tolerate the missing record.
	ResultadoCreadoSinLimite
	ResultadoActualizado
	ResultadoEliminado
	ResultadoValidacion
	ResultadoFallo
)

// Resultado is the structured outcome returned by every mutating operation.
type Resultado struct {
	Tipo    TipoResultado
	Mensaje string
	Campos  schema.FieldErrors // set only for ResultadoValidacion
	Err     error              // set for ResultadoFallo and ResultadoCreadoSinLimite
}

func creado(msg string) Resultado { return Resultado{Tipo: ResultadoCreado, Mensaje: msg} }
func fallo(err error) Resultado   { return Resultado{Tipo: ResultadoFallo, Err: err} }
func validacion(c schema.FieldErrors) Resultado {
	return Resultado{Tipo: ResultadoValidacion, Campos: c}
}

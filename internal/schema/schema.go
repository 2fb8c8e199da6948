// Package schema validates create/edit form input before any network call.
// Input arrives as an untyped key→value mapping (numeric fields may be
// string-typed, as submitted by the form layer); output is either the
// coerced, typed record or one message per offending field.
//
// Failure classification mirrors the form layer's historical behavior:
// each failure kind has a canonical message, custom rules carry their own,
// and only the first failing constraint per field is reported, in the
// field's declared constraint order (coercion counts as the first
// constraint).
package schema

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Canonical messages per failure kind.
const (
	MsgDemasiadoPequeno = "El valor es demasiado pequeño."
	MsgDemasiadoGrande  = "El valor es demasiado grande."
	MsgTipoInvalido     = "El tipo de dato es inválido."
	MsgFormato          = "Formato incorrecto"
	MsgSoloLetras       = "El nombre debe contener solo letras"
	MsgCorreo           = "Correo Invalido"
)

// FieldErrors maps a field's wire name to its first failing constraint message.
type FieldErrors map[string]string

// mensajes holds per-schema message overrides: field → tag → message.
// Anything not listed falls back to the canonical kind message.
type mensajes map[string]map[string]string

var (
	soloLetrasRe  = regexp.MustCompile(`^[a-zA-Z]+$`)
	soloDigitosRe = regexp.MustCompile(`^\d+$`)
	telefonoRe    = regexp.MustCompile(`^\d{9}$`)
	rucRe         = regexp.MustCompile(`^\d{11}$`)
)

var validate = validator.New()

func init() {
	// Report fields by their wire (json) name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister("soloLetras", soloLetrasRe)
	mustRegister("soloDigitos", soloDigitosRe)
	mustRegister("telefono9", telefonoRe)
	mustRegister("ruc11", rucRe)
}

func mustRegister(tag string, re *regexp.Regexp) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// mensaje selects the message for one field error: the schema's override if
// declared, otherwise the canonical message for the tag's failure kind.
func mensaje(campo, tag string, m mensajes) string {
	if por, ok := m[campo]; ok {
		if msg, ok := por[tag]; ok {
			return msg
		}
	}
	switch tag {
	case "min", "gt", "gte":
		return MsgDemasiadoPequeno
	case "max", "lt", "lte":
		return MsgDemasiadoGrande
	case "email":
		return MsgCorreo
	case "soloLetras":
		return MsgSoloLetras
	case "soloDigitos", "telefono9", "ruc11", "oneof":
		return MsgFormato
	case "datetime":
		// an unparseable date is an invalid-type failure, not a format one
		return MsgTipoInvalido
	default:
		return MsgTipoInvalido
	}
}

// correr runs the validator over an already-coerced form and merges its
// failures into errs without overwriting coercion failures (the coercion
// constraint is declared first).
func correr(form interface{}, m mensajes, errs FieldErrors) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		campo := fe.Field()
		if _, ya := errs[campo]; ya {
			continue
		}
		errs[campo] = mensaje(campo, fe.Tag(), m)
	}
	return errs
}

// ── Coercion ─────────────────────────────────────────────────────────────────

// coercion pulls typed values out of the untyped form input, recording one
// wrong-type error per field that cannot be coerced. NaN and infinities are
// rejected here, before any bounds check sees the value.
type coercion struct {
	in   map[string]interface{}
	errs FieldErrors
}

func nuevaCoercion(in map[string]interface{}) *coercion {
	return &coercion{in: in, errs: make(FieldErrors)}
}

func (c *coercion) falla(campo string) {
	if _, ya := c.errs[campo]; !ya {
		c.errs[campo] = MsgTipoInvalido
	}
}

func (c *coercion) texto(campo string) string {
	v, ok := c.in[campo]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.falla(campo)
		return ""
	}
	return s
}

// numero accepts float64 (JSON numbers), integer types, and numeric strings
// (the form layer submits numerics as strings).
func (c *coercion) numero(campo string) float64 {
	v, ok := c.in[campo]
	if !ok || v == nil {
		c.falla(campo)
		return 0
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			c.falla(campo)
			return 0
		}
		f = parsed
	default:
		c.falla(campo)
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		c.falla(campo)
		return 0
	}
	return f
}

// entero coerces like numero but additionally requires a whole number.
func (c *coercion) entero(campo string) int64 {
	f := c.numero(campo)
	if _, ya := c.errs[campo]; ya {
		return 0
	}
	if f != math.Trunc(f) {
		c.falla(campo)
		return 0
	}
	return int64(f)
}

// parseDigits converts an already regex-checked digit string to an int64.
func parseDigits(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func decimalDe(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

package schema

// limiteForm validates the secondary "modify limits" modal. The thresholds
// arrive as digit-only strings; nothing else on the record is editable there.
type limiteForm struct {
	LimiteStockout            string `json:"limite_stockout" validate:"soloDigitos"`
	LimiteSobreabastecimiento string `json:"limite_sobreabastecimiento" validate:"soloDigitos"`
}

// LimitesEditados is the coerced result of a valid limit edit form.
type LimitesEditados struct {
	LimiteStockout            float64
	LimiteSobreabastecimiento float64
}

// ValidarLimites checks a stock-limit edit form.
func ValidarLimites(input map[string]interface{}) (*LimitesEditados, FieldErrors) {
	c := nuevaCoercion(input)
	form := limiteForm{
		LimiteStockout:            c.texto("limite_stockout"),
		LimiteSobreabastecimiento: c.texto("limite_sobreabastecimiento"),
	}
	if errs := correr(form, nil, c.errs); len(errs) > 0 {
		return nil, errs
	}
	so, _ := parseDigits(form.LimiteStockout)
	sa, _ := parseDigits(form.LimiteSobreabastecimiento)
	return &LimitesEditados{
		LimiteStockout:            float64(so),
		LimiteSobreabastecimiento: float64(sa),
	}, nil
}

package request

import "errors"

type ComputeRequest struct {
	DatosCrudos map[string]any `json:"datos_crudos"`
	Flags       ComputeFlags   `json:"flags"`
}

// ComputeFlags opt individual inputs out of the totals when the caller has
// already folded them into egresos.
type ComputeFlags struct {
	CreditoIncluidoEnEgresos            bool `json:"credito_incluido_en_egresos"`
	FuturosCompromisosIncluidoEnEgresos bool `json:"futuros_compromisos_incluido_en_egresos"`
}

func (r *ComputeRequest) Validate() error {
	if r.DatosCrudos == nil {
		return errors.New("datos_crudos is required")
	}
	return nil
}

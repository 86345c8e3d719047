package service

import (
	"context"
	"fmt"
	"math"
	"pulsovital-golang/internal/model/request"
	"pulsovital-golang/internal/model/response"
)

const futurosCompromisosDesc = "Compromisos futuros anualizados según lo declarado"

type FinancialsService struct{}

func NewFinancialsService() *FinancialsService {
	return &FinancialsService{}
}

// Compute derives the income, expense, credit and patrimony figures from the
// loosely structured datos_crudos payload. It returns the pure numbers, their
// ES-formatted counterparts and any normalization notes.
func (fs *FinancialsService) Compute(_ context.Context, r request.ComputeRequest) (response.ComputeResponse, error) {
	notes := []string{}

	economico := section(r.DatosCrudos, "economico")
	patrimonial := section(r.DatosCrudos, "patrimonial")

	// inputs (economico)
	ingresosFijos := amount(economico, "ingresos_fijos")
	ingresosVariables := amount(economico, "ingresos_variables")
	prestacionesFijas := amount(economico, "prestaciones_fijas")
	prestacionesVariables := amount(economico, "prestaciones_variables")
	egresosFijos := amount(economico, "egresos_fijos")
	egresosVariables := amount(economico, "egresos_variables")

	// credit
	creditoMensual := amount(economico, "credito_mensual", "pago_mensual_deuda")
	creditoAnualIn := amount(economico, "credito_anual")
	if creditoMensual == 0 && creditoAnualIn != 0 {
		creditoMensual = creditoAnualIn / 12.0
		notes = append(notes, "credito_mensual no venía; se derivó de credito_anual/12.")
	}

	if r.Flags.CreditoIncluidoEnEgresos {
		if creditoMensual != 0 {
			notes = append(notes, "credito_incluido_en_egresos=true: se forzó credito_mensual=0 para evitar doble conteo.")
		}
		creditoMensual = 0
	}

	// future commitments, normalized once: anual > mensual*12 > 0, with the
	// new futuros_compromisos_anual key taking priority over the legacy one
	futurosTotalAnual := amount(economico, "futuros_compromisos_anual", "futuros_compromisos_total_anual")
	futurosMensual := amount(economico, "futuros_compromisos_mensual")

	if futurosTotalAnual == 0 && futurosMensual != 0 {
		futurosTotalAnual = futurosMensual * 12.0
	}
	if r.Flags.FuturosCompromisosIncluidoEnEgresos {
		if futurosTotalAnual != 0 {
			notes = append(notes, "futuros_compromisos_incluido_en_egresos=true: se forzó futuros_compromisos_total_anual=0 para evitar doble conteo.")
		}
		futurosTotalAnual = 0
	}

	// inputs (patrimonial)
	activosInmobiliarios := amount(patrimonial, "activos_inmobiliarios")
	activosDesgasteRapido := amount(patrimonial, "activos_desgaste_rapido")
	inversiones := amount(patrimonial, "inversiones")
	sociedadesYAcciones := amount(patrimonial, "sociedades_y_acciones")
	fondoEmergencia := amount(patrimonial, "fondo_emergencia")
	if fondoEmergencia == 0 {
		fondoEmergencia = amount(economico, "fondo_emergencia")
	}

	seguroVida := amount(patrimonial, "seguro_vida")
	valorSeguroAuto := amount(patrimonial, "valor_seguro_auto")
	segurosAccidentesPersonales := amount(patrimonial, "seguros_accidentes_personales")
	seguroInmuebles := amount(patrimonial, "seguro_inmuebles")
	gastosFuneral := amount(patrimonial, "gastos_funeral")
	planRetiroSA := amount(patrimonial, "plan_retiro_sa")
	planAhorroSA := amount(patrimonial, "plan_ahorro_sa")
	personaClaveSA := amount(patrimonial, "persona_clave_sa")
	intersociosSA := amount(patrimonial, "intersocios_sa")
	sumaAseguradaGMM := amount(patrimonial, "suma_asegurada_gmm")

	// income
	ingresosTotalesMensuales := ingresosFijos + ingresosVariables
	prestacionesTotalesMensuales := prestacionesFijas + prestacionesVariables
	ingresosGlobalesMensuales := ingresosTotalesMensuales + prestacionesTotalesMensuales

	// expenses
	egresosGlobalesMensuales := egresosVariables + egresosFijos

	// emergency fund vs income
	var porcEmergencia, mesesCubiertos float64
	if ingresosTotalesMensuales > 0 {
		porcEmergencia = (fondoEmergencia / ingresosTotalesMensuales) * 100.0
		mesesCubiertos = fondoEmergencia / ingresosTotalesMensuales
	}

	creditoAnual := creditoMensual * 12.0

	// balances
	futurosMensualEquiv := futurosTotalAnual / 12.0
	balanceMensualOperativo := ingresosGlobalesMensuales - egresosGlobalesMensuales
	balanceTotalMensual := balanceMensualOperativo - creditoMensual
	balanceTotalAnual := balanceTotalMensual * 12.0
	balanceGlobal := balanceTotalMensual - futurosMensualEquiv

	// patrimony and protection
	patrimonioTotal := activosInmobiliarios +
		activosDesgasteRapido +
		inversiones +
		sociedadesYAcciones +
		fondoEmergencia

	proteccionTotal := seguroVida +
		0.60*valorSeguroAuto +
		segurosAccidentesPersonales +
		seguroInmuebles +
		gastosFuneral +
		planRetiroSA +
		planAhorroSA +
		personaClaveSA +
		intersociosSA +
		0.02*sumaAseguradaGMM

	var porcCobertura float64
	if patrimonioTotal > 0 {
		porcCobertura = (proteccionTotal / patrimonioTotal) * 100.0
	}

	riesgoPatrimonialPorcentaje := clamp(100.0-porcCobertura, 0.0, 100.0)

	var nivelRiesgo string
	switch {
	case porcCobertura <= 45:
		nivelRiesgo = "Alto"
	case porcCobertura <= 80:
		nivelRiesgo = "Moderado"
	default:
		nivelRiesgo = "Bajo"
	}

	formatted := response.FormattedResult{
		OperacionFinal: response.OperacionFinal{
			IngresosMensualesFijos:     formatMoneyES(ingresosFijos),
			IngresosMensualesVariables: formatMoneyES(ingresosVariables),
			IngresosTotales:            formatMoneyES(ingresosTotalesMensuales),
			PrestacionesTotales:        formatMoneyES(prestacionesTotalesMensuales),
			IngresosGlobales:           formatMoneyES(ingresosGlobalesMensuales),
			EgresosGlobales:            formatMoneyES(egresosGlobalesMensuales),
			FuturosCompromisos:         futurosCompromisosDesc,
			FuturosCompromisosTotal:    fmt.Sprintf("%s (anual)", formatMoneyES(futurosTotalAnual)),
			CreditoMensual:             formatMoneyES(creditoMensual),
			CreditoAnual:               formatMoneyES(creditoAnual),
		},
		BalanceTotal:  formatMoneyES(balanceTotalMensual),
		BalanceGlobal: formatMoneyES(balanceGlobal),
		FondoDeEmergencia: fmt.Sprintf("%s (%s meses de ingresos equivalentes)",
			formatPercentES(porcEmergencia), formatNumberES(mesesCubiertos, 2)),
		PerfilPatrimonial: response.PerfilPatrimonial{
			PatrimonioTotal:             formatMoneyES(patrimonioTotal),
			ProteccionTotal:             formatMoneyES(proteccionTotal),
			NivelRiesgoPatrimonial:      nivelRiesgo,
			RiesgoPatrimonialPorcentaje: round2(riesgoPatrimonialPorcentaje),
			ActivosDesgasteRapido:       formatMoneyES(activosDesgasteRapido),
			ActivosInmobiliarios:        formatMoneyES(activosInmobiliarios),
			Inversiones:                 formatMoneyES(inversiones),
			SociedadesYAcciones:         formatMoneyES(sociedadesYAcciones),
		},
	}

	raw := response.RawResult{
		IngresosFijos:                ingresosFijos,
		IngresosVariables:            ingresosVariables,
		PrestacionesFijas:            prestacionesFijas,
		PrestacionesVariables:        prestacionesVariables,
		EgresosFijos:                 egresosFijos,
		EgresosVariables:             egresosVariables,
		IngresosTotalesMensuales:     ingresosTotalesMensuales,
		PrestacionesTotalesMensuales: prestacionesTotalesMensuales,
		IngresosGlobalesMensuales:    ingresosGlobalesMensuales,
		EgresosGlobalesMensuales:     egresosGlobalesMensuales,
		CreditoMensual:               creditoMensual,
		CreditoAnual:                 creditoAnual,
		FuturosCompromisosTotalAnual: futurosTotalAnual,
		BalanceMensualOperativo:      balanceMensualOperativo,
		BalanceTotalMensual:          balanceTotalMensual,
		BalanceTotalAnual:            balanceTotalAnual,
		BalanceGlobal:                balanceGlobal,
		FondoEmergencia:              fondoEmergencia,
		PorcEmergencia:               porcEmergencia,
		MesesCubiertos:               mesesCubiertos,
		PatrimonioTotal:              patrimonioTotal,
		ProteccionTotal:              proteccionTotal,
		PorcCobertura:                porcCobertura,
		RiesgoPatrimonialPorcentaje:  riesgoPatrimonialPorcentaje,
		NivelRiesgoPatrimonial:       nivelRiesgo,
	}

	return response.ComputeResponse{
		Raw:       raw,
		Formatted: formatted,
		Notes:     notes,
	}, nil
}

// section returns a nested object of datos_crudos, or nil when missing or of
// the wrong shape. Reads on a nil map simply yield 0.
func section(datos map[string]any, key string) map[string]any {
	s, _ := datos[key].(map[string]any)
	return s
}

// amount reads the first present key and coerces its value to a number.
func amount(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return toFloat(v)
		}
	}
	return 0
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

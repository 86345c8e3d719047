package response

type ComputeResponse struct {
	Raw       RawResult       `json:"raw"`
	Formatted FormattedResult `json:"formatted"`
	Notes     []string        `json:"notes"`
}

// RawResult carries the pure numbers before any locale formatting.
type RawResult struct {
	IngresosFijos                float64 `json:"ingresos_fijos"`
	IngresosVariables            float64 `json:"ingresos_variables"`
	PrestacionesFijas            float64 `json:"prestaciones_fijas"`
	PrestacionesVariables        float64 `json:"prestaciones_variables"`
	EgresosFijos                 float64 `json:"egresos_fijos"`
	EgresosVariables             float64 `json:"egresos_variables"`
	IngresosTotalesMensuales     float64 `json:"ingresos_totales_mensuales"`
	PrestacionesTotalesMensuales float64 `json:"prestaciones_totales_mensuales"`
	IngresosGlobalesMensuales    float64 `json:"ingresos_globales_mensuales"`
	EgresosGlobalesMensuales     float64 `json:"egresos_globales_mensuales"`
	CreditoMensual               float64 `json:"credito_mensual"`
	CreditoAnual                 float64 `json:"credito_anual"`
	FuturosCompromisosTotalAnual float64 `json:"futuros_compromisos_total_anual"`
	BalanceMensualOperativo      float64 `json:"balance_mensual_operativo"`
	BalanceTotalMensual          float64 `json:"balance_total_mensual"`
	BalanceTotalAnual            float64 `json:"balance_total_anual"`
	BalanceGlobal                float64 `json:"balance_global"`
	FondoEmergencia              float64 `json:"fondo_emergencia"`
	PorcEmergencia               float64 `json:"porc_emergencia"`
	MesesCubiertos               float64 `json:"meses_cubiertos"`
	PatrimonioTotal              float64 `json:"patrimonio_total"`
	ProteccionTotal              float64 `json:"proteccion_total"`
	PorcCobertura                float64 `json:"porc_cobertura"`
	RiesgoPatrimonialPorcentaje  float64 `json:"riesgo_patrimonial_porcentaje"`
	NivelRiesgoPatrimonial       string  `json:"nivel_riesgo_patrimonial"`
}

// FormattedResult carries the same figures as ES-locale strings, ready to be
// painted into the final JSON.
type FormattedResult struct {
	OperacionFinal    OperacionFinal    `json:"operacion_final"`
	BalanceTotal      string            `json:"balance_total"`
	BalanceGlobal     string            `json:"balance_global"`
	FondoDeEmergencia string            `json:"fondo_de_emergencia"`
	PerfilPatrimonial PerfilPatrimonial `json:"operaciones_perfil_patrimonial"`
}

type OperacionFinal struct {
	IngresosMensualesFijos     string `json:"ingresos_mensuales_fijos"`
	IngresosMensualesVariables string `json:"ingresos_mensuales_variables"`
	IngresosTotales            string `json:"ingresos_totales"`
	PrestacionesTotales        string `json:"prestaciones_totales"`
	IngresosGlobales           string `json:"ingresos_globales"`
	EgresosGlobales            string `json:"egresos_globales"`
	FuturosCompromisos         string `json:"futuros_compromisos"`
	FuturosCompromisosTotal    string `json:"futuros_compromisos_total"`
	CreditoMensual             string `json:"credito_mensual"`
	CreditoAnual               string `json:"credito_anual"`
}

type PerfilPatrimonial struct {
	PatrimonioTotal             string  `json:"patrimonio_total"`
	ProteccionTotal             string  `json:"proteccion_total"`
	NivelRiesgoPatrimonial      string  `json:"nivel_riesgo_patrimonial"`
	RiesgoPatrimonialPorcentaje float64 `json:"riesgo_patrimonial_porcentaje"`
	ActivosDesgasteRapido       string  `json:"activos_desgaste_rapido"`
	ActivosInmobiliarios        string  `json:"activos_inmobiliarios"`
	Inversiones                 string  `json:"inversiones"`
	SociedadesYAcciones         string  `json:"sociedades_y_acciones"`
}

package catalog

// keywordEntry asocia una palabra clave normalizada (sin tildes, minúsculas)
// con el id de proceso que representa.
type keywordEntry struct {
	keyword   string
	processID string
}

// keywordTable se evalúa en orden: la primera coincidencia gana. El orden es
// parte del contrato observado — "scanner de alineado" resuelve a scanner
// porque esa entrada está antes — así que no reordenar sin revisar quién
// depende del desempate.
var keywordTable = []keywordEntry{
	{"pre-rtv", "revision_rtv"},
	{"pre rtv", "revision_rtv"},
	{"riteve", "revision_rtv"},
	{"rtv", "revision_rtv"},
	{"super evaluacion", "super_evaluacion"},
	{"super", "super_evaluacion"},
	{"scanner", "scanner"},
	{"escaneo", "scanner"},
	{"computarizado", "scanner"},
	{"alineado", "alineado"},
	{"alineamiento", "alineado"},
	{"tramado", "tramado"},
	{"balanceo", "tramado"},
	{"aceite", "cambio_aceite"},
	{"lubricacion", "cambio_aceite"},
	{"freno", "frenos"},
	{"suspension", "suspension"},
	{"amortiguador", "suspension"},
	{"mantenimiento", "mantenimiento_completo"},
	{"diagnostico", "diagnostico_general"},
	{"evaluacion", "super_evaluacion"},
	{"revision", "diagnostico_general"},
}

package catalog

import "github.com/TallerExpressCR/taller-app-core/internal/models"

// processes es la tabla canónica de procesos. Definida en tiempo de
// compilación y de solo lectura en runtime: toda mutación pasa por las
// copias que entrega InstantiateSteps.
var processes = []ServiceProcess{
	{
		ID:          "alineado",
		DisplayName: "Alineado de dirección",
		Steps: []models.StepRecord{
			{ID: "aln_01", Description: "Recepción del vehículo y verificación de placa"},
			{ID: "aln_02", Description: "Inspección visual de llantas y presión de aire"},
			{ID: "aln_03", Description: "Revisión de terminales y rótulas de dirección"},
			{ID: "aln_04", Description: "Montaje en rampa de alineado y calibración de sensores"},
			{ID: "aln_05", Description: "Ajuste de convergencia y camber según fabricante"},
			{ID: "aln_06", Description: "Sustitución de terminales desgastadas", RequiresAuthorization: true},
			{ID: "aln_07", Description: "Prueba de ruta y verificación de centrado del volante"},
		},
	},
	{
		ID:          "tramado",
		DisplayName: "Tramado y balanceo",
		Steps: []models.StepRecord{
			{ID: "trm_01", Description: "Recepción del vehículo y verificación de placa"},
			{ID: "trm_02", Description: "Desmontaje de las cuatro ruedas"},
			{ID: "trm_03", Description: "Inspección de aros y profundidad de dibujo"},
			{ID: "trm_04", Description: "Balanceo dinámico de cada rueda"},
			{ID: "trm_05", Description: "Rotación según patrón recomendado"},
			{ID: "trm_06", Description: "Cambio de válvulas o contrapesas dañadas", RequiresAuthorization: true},
			{ID: "trm_07", Description: "Montaje, torque de tuercas y prueba de ruta"},
		},
	},
	{
		ID:          "scanner",
		DisplayName: "Diagnóstico con scanner",
		Steps: []models.StepRecord{
			{ID: "scn_01", Description: "Conexión del scanner al puerto OBD-II"},
			{ID: "scn_02", Description: "Lectura y registro de códigos de falla"},
			{ID: "scn_03", Description: "Verificación de datos en vivo (sensores y actuadores)"},
			{ID: "scn_04", Description: "Interpretación de códigos y diagnóstico preliminar"},
			{ID: "scn_05", Description: "Borrado de códigos y prueba de confirmación"},
			{ID: "scn_06", Description: "Reparación de fallas detectadas", RequiresAuthorization: true},
		},
	},
	{
		ID:          "revision_rtv",
		DisplayName: "Revisión Pre-RTV",
		Steps: []models.StepRecord{
			{ID: "rtv_01", Description: "Verificación de luces exteriores y de freno"},
			{ID: "rtv_02", Description: "Revisión de emisiones y sistema de escape"},
			{ID: "rtv_03", Description: "Prueba de frenado en banco"},
			{ID: "rtv_04", Description: "Inspección de holguras en suspensión y dirección"},
			{ID: "rtv_05", Description: "Revisión de vidrios, espejos y limpiaparabrisas"},
			{ID: "rtv_06", Description: "Verificación de pito y cinturones de seguridad"},
			{ID: "rtv_07", Description: "Corrección de defectos encontrados", RequiresAuthorization: true},
			{ID: "rtv_08", Description: "Informe final con lista de puntos a corregir"},
		},
	},
	{
		ID:          "super_evaluacion",
		DisplayName: "Super Evaluación",
		Steps: []models.StepRecord{
			{ID: "sev_01", Description: "Inspección de carrocería y chasis"},
			{ID: "sev_02", Description: "Diagnóstico computarizado completo"},
			{ID: "sev_03", Description: "Revisión de motor: compresión y fugas"},
			{ID: "sev_04", Description: "Revisión de transmisión y embrague"},
			{ID: "sev_05", Description: "Revisión de frenos, suspensión y dirección"},
			{ID: "sev_06", Description: "Revisión de sistema eléctrico y batería"},
			{ID: "sev_07", Description: "Prueba de ruta con registro de parámetros"},
			{ID: "sev_08", Description: "Reparaciones derivadas de la evaluación", RequiresAuthorization: true},
			{ID: "sev_09", Description: "Entrega de informe de condición general"},
		},
	},
	{
		ID:          "cambio_aceite",
		DisplayName: "Cambio de aceite y filtros",
		Steps: []models.StepRecord{
			{ID: "ace_01", Description: "Verificación de tipo y grado de aceite recomendado"},
			{ID: "ace_02", Description: "Drenado del aceite usado"},
			{ID: "ace_03", Description: "Sustitución del filtro de aceite"},
			{ID: "ace_04", Description: "Sustitución del filtro de aire", RequiresAuthorization: true},
			{ID: "ace_05", Description: "Llenado con aceite nuevo y revisión de nivel"},
			{ID: "ace_06", Description: "Inspección de fugas con motor encendido"},
		},
	},
	{
		ID:          "frenos",
		DisplayName: "Revisión de frenos",
		Steps: []models.StepRecord{
			{ID: "frn_01", Description: "Desmontaje de ruedas y inspección de pastillas"},
			{ID: "frn_02", Description: "Medición de espesor de discos"},
			{ID: "frn_03", Description: "Revisión de nivel y estado del líquido de frenos"},
			{ID: "frn_04", Description: "Sustitución de pastillas o discos desgastados", RequiresAuthorization: true},
			{ID: "frn_05", Description: "Sangrado del sistema hidráulico", RequiresAuthorization: true},
			{ID: "frn_06", Description: "Prueba de frenado en ruta"},
		},
	},
	{
		ID:          "suspension",
		DisplayName: "Revisión de suspensión",
		Steps: []models.StepRecord{
			{ID: "sus_01", Description: "Inspección visual de amortiguadores y espirales"},
			{ID: "sus_02", Description: "Revisión de bujes, barras y soportes"},
			{ID: "sus_03", Description: "Prueba de rebote en banco de suspensión"},
			{ID: "sus_04", Description: "Sustitución de amortiguadores defectuosos", RequiresAuthorization: true},
			{ID: "sus_05", Description: "Sustitución de bujes o soportes dañados", RequiresAuthorization: true},
			{ID: "sus_06", Description: "Prueba de ruta y verificación de estabilidad"},
		},
	},
	{
		ID:          "mantenimiento_completo",
		DisplayName: "Mantenimiento completo",
		Steps: []models.StepRecord{
			{ID: "mnt_01", Description: "Cambio de aceite de motor y filtro"},
			{ID: "mnt_02", Description: "Revisión y relleno de todos los fluidos"},
			{ID: "mnt_03", Description: "Revisión de frenos en las cuatro ruedas"},
			{ID: "mnt_04", Description: "Revisión de banda de accesorios y mangueras"},
			{ID: "mnt_05", Description: "Revisión de batería y sistema de carga"},
			{ID: "mnt_06", Description: "Rotación y calibración de llantas"},
			{ID: "mnt_07", Description: "Cambio de bujías y filtros adicionales", RequiresAuthorization: true},
			{ID: "mnt_08", Description: "Diagnóstico con scanner de cierre"},
		},
	},
	{
		ID:          "diagnostico_general",
		DisplayName: "Diagnóstico general",
		Steps: []models.StepRecord{
			{ID: "dgn_01", Description: "Entrevista sobre el síntoma reportado"},
			{ID: "dgn_02", Description: "Reproducción del problema en sitio o en ruta"},
			{ID: "dgn_03", Description: "Inspección mecánica del sistema implicado"},
			{ID: "dgn_04", Description: "Lectura de códigos con scanner"},
			{ID: "dgn_05", Description: "Presupuesto de la reparación", RequiresAuthorization: true},
			{ID: "dgn_06", Description: "Ejecución de la reparación aprobada", RequiresAuthorization: true},
		},
	},
}

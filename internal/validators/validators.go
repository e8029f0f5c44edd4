package validators

import (
	"regexp"
	"strings"
)

var (
	// Placas particulares: "ABC123", "ABC-123" o el formato viejo de solo
	// dígitos. Las especiales (CL, MOT, taxis) llevan prefijo de dos o tres
	// letras y hasta seis dígitos.
	plateParticular = regexp.MustCompile(`^[A-Z]{3}-?\d{3}$|^\d{6}$`)
	plateEspecial   = regexp.MustCompile(`^[A-Z]{2,3}-?\d{1,6}$`)
)

// IsPlateValid valida el formato de la placa según su tipo. Un tipo
// desconocido solo exige que no venga vacía: el backend es quien decide.
func IsPlateValid(plateType, plate string) bool {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(plateType)) {
	case "particular":
		return plateParticular.MatchString(plate)
	case "especial", "placa especial":
		return plateEspecial.MatchString(plate)
	default:
		return true
	}
}

// IsEmailShaped es un chequeo de forma, no de entregabilidad: en el
// dispositivo no se puede asumir resolución DNS.
func IsEmailShaped(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

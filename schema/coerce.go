package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatos de fecha aceptados, en orden de prueba. Primero los formatos
// textuales conocidos, después un intento permisivo.
var formatosFecha = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

var formatosFallback = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// Grafías que se interpretan como verdadero (sin distinguir mayúsculas).
var grafiasVerdaderas = map[string]bool{
	"true": true, "1": true, "t": true, "y": true, "yes": true,
}

// coerceFecha convierte cualquier celda a fecha o nil. Nunca falla:
// un valor imposible de interpretar se normaliza a nil.
func coerceFecha(v any) *time.Time {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		if x.IsZero() {
			return nil
		}
		t := x
		return &t
	case *time.Time:
		if x == nil || x.IsZero() {
			return nil
		}
		t := *x
		return &t
	}

	s := strings.TrimSpace(coerceTexto(v))
	if s == "" {
		return nil
	}
	for _, fmtFecha := range formatosFecha {
		if t, err := time.Parse(fmtFecha, s); err == nil {
			return &t
		}
	}
	for _, fmtFecha := range formatosFallback {
		if t, err := time.Parse(fmtFecha, s); err == nil {
			return &t
		}
	}
	return nil
}

// coerceEntero intenta convertir la celda a entero.
func coerceEntero(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float32:
		return int(x), true
	case float64:
		return int(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

// coerceTexto convierte la celda a texto plano ("" para nulos).
func coerceTexto(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		// los números de JSON llegan como float64
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}

// coerceBool interpreta banderas tipo milestone. Cualquier cosa que no sea
// una grafía verdadera conocida (incluido nil) es false.
func coerceBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return grafiasVerdaderas[strings.ToLower(coerceTexto(v))]
}

// coerceEnum fuerza el valor al dominio cerrado: inválido o vacío → default.
// Ojo: comportamiento distinto al de coerceEnumOpt, que preserva el nulo.
func coerceEnum(v any, dominio []string, def string) string {
	s := coerceTexto(v)
	for _, d := range dominio {
		if s == d {
			return s
		}
	}
	return def
}

// coerceEnumOpt es la variante para enums opcionales (rag): un valor
// inválido o vacío se normaliza a nil, nunca a un default.
func coerceEnumOpt(v any, dominio []string) *string {
	s := coerceTexto(v)
	if s == "" {
		return nil
	}
	for _, d := range dominio {
		if s == d {
			return &s
		}
	}
	return nil
}

// SplitLista convierte el texto editado a mano ("Ana, Luis") en una lista,
// recortando espacios y descartando elementos vacíos. Una entrada vacía
// normaliza a nil, nunca a una lista con un string vacío.
func SplitLista(v any) []string {
	var partes []string
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		partes = x
	case []any:
		for _, e := range x {
			partes = append(partes, coerceTexto(e))
		}
	default:
		s := coerceTexto(v)
		if s == "" {
			return nil
		}
		partes = strings.Split(s, ",")
	}

	var limpias []string
	for _, p := range partes {
		p = strings.TrimSpace(p)
		if p != "" {
			limpias = append(limpias, p)
		}
	}
	return limpias
}

// JoinLista es la conversión inversa, para la capa de edición y el CSV.
func JoinLista(lista []string) string {
	return strings.Join(lista, ", ")
}

package notify

import (
	"gantt-proyectos/models"
	"gantt-proyectos/utilities"
)

// FalloEnvio es un intento de envío fallido a un destinatario.
type FalloEnvio struct {
	Email  string `json:"email"`
	Motivo string `json:"motivo"`
}

// Resultado resume una invocación del digest: a quién se resolvió,
// qué nombres quedaron sin cruce, cuántos envíos salieron bien y
// cuáles fallaron. En modo solo-vista incluye el HTML renderizado.
type Resultado struct {
	Recipients  []string     `json:"recipients"`
	NoResueltos []string     `json:"no_resueltos"`
	Enviados    int          `json:"enviados"`
	Fallidos    []FalloEnvio `json:"fallidos"`
	HTML        string       `json:"html,omitempty"`
	SoloVista   bool         `json:"solo_vista"`
}

// EnviarDigest resuelve destinatarios, renderiza el resumen una sola vez y
// lo envía secuencialmente, un intento por destinatario. Un fallo con un
// destinatario no detiene los intentos restantes. Con soloVista=true (o sin
// mailer configurado) no se envía nada.
func EnviarDigest(tareas []models.Tarea, indice map[string]models.Usuario, mailer Mailer, soloVista bool) Resultado {
	recipients, noResueltos := ResolverDestinatarios(tareas, indice)
	html := ConstruirDigestHTML(tareas)
	asunto := Asunto(tareas)

	res := Resultado{
		Recipients:  recipients,
		NoResueltos: noResueltos,
		Fallidos:    []FalloEnvio{},
		SoloVista:   soloVista || mailer == nil,
	}

	if res.SoloVista {
		res.HTML = html
		return res
	}

	for _, email := range recipients {
		if err := mailer.Send(email, asunto, html); err != nil {
			utilities.LogError(err, "Fallo el envío del digest a "+email)
			res.Fallidos = append(res.Fallidos, FalloEnvio{Email: email, Motivo: err.Error()})
			continue
		}
		res.Enviados++
	}
	return res
}

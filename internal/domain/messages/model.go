package messages

import "time"

// Message es un mensaje enviado a través del sitio. Recipient queda
// vacío al enviar y recién se fija cuando alguien responde; Response
// arranca vacío por contrato.
type Message struct {
	ID        string
	Sender    string
	Recipient string
	Body      string
	Response  string
	Timestamp time.Time
}

package dto

// Valores del campo status del sobre de respuesta.
const (
	StatusFail    = 0
	StatusSuccess = 1
)

// Envelope sobre uniforme de respuesta. El payload adicional se agrega al mismo nivel
// (ver interfaces/http.respond); este tipo documenta la forma base.
type Envelope struct {
	Status  int    `json:"status" example:"1"`
	Message string `json:"message" example:"Products Found"`
}

package dto

// ProductDocument documento libre de catálogo tal como lo envía o recibe el cliente.
// Incluye "_id" en las respuestas.
type ProductDocument map[string]interface{}

// ProductResponse sobre con un producto.
type ProductResponse struct {
	Envelope
	Product ProductDocument `json:"product"`
}

// ProductListResponse sobre con el catálogo completo.
type ProductListResponse struct {
	Envelope
	Products []ProductDocument `json:"products"`
}

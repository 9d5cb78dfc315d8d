package entity

// IDField nombre del campo identificador en los documentos expuestos.
const IDField = "_id"

// Product es un documento de catálogo: ID asignado por el store y campos libres del caller.
type Product struct {
	ID     string
	Fields map[string]interface{}
}

// Document devuelve los campos con el identificador incluido, listo para serializar.
func (p *Product) Document() map[string]interface{} {
	doc := make(map[string]interface{}, len(p.Fields)+1)
	for k, v := range p.Fields {
		doc[k] = v
	}
	doc[IDField] = p.ID
	return doc
}

// StripID elimina el identificador de un documento suministrado por el caller;
// el ID siempre lo asigna el store.
func StripID(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

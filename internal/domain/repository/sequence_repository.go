package repository

import "context"

// SequenceRepository expone los generadores atómicos de numeración del servidor
// (funciones de PostgreSQL respaldadas por secuencias). Devuelven la cadena ya
// formateada con ceros a la izquierda (ej. "1042").
type SequenceRepository interface {
	NextCustomerCode(ctx context.Context) (string, error)
	NextOrderNumber(ctx context.Context) (string, error)
}

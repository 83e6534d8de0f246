package entity

import "time"

// TaskColumn representa una columna del tablero configurable.
// Position define el orden de izquierda a derecha.
type TaskColumn struct {
	ID        string
	Name      string
	Color     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

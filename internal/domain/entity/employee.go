package entity

import "time"

// Employee representa un empleado del negocio. El email es único.
type Employee struct {
	ID          int64
	Email       string
	Name        string
	Position    string
	Department  string
	Contact     string
	JoiningDate time.Time
	PhotoFileID string // referencia opcional al avatar en almacenamiento externo
	CreatedAt   time.Time
}

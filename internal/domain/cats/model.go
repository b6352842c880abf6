package cats

import "time"

// Gender define el sexo del gato.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Cat representa un gato registrado en el sistema.
type Cat struct {
	ID string

	Name   string
	Breed  string
	Age    int
	Gender Gender

	// Image es el nombre de archivo generado al subir la foto.
	// Vacío = sin imagen.
	Image string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package workflow

import "errors"

// Kind clasifica los errores de dominio. Los tres primeros son recuperables
// por el cliente (reintenta con datos/rol/momento correctos); Conflicto
// indica que otro escritor ganó la carrera sobre la misma requisición.
type Kind int

const (
	KindValidacion Kind = iota
	KindAutorizacion
	KindEstado
	KindConflicto
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errValidacion(msg string) error {
	return &Error{Kind: KindValidacion, Message: msg}
}

func errAutorizacion(msg string) error {
	return &Error{Kind: KindAutorizacion, Message: msg}
}

func errEstado(msg string) error {
	return &Error{Kind: KindEstado, Message: msg}
}

// ErrConflicto lo reporta el repositorio cuando el guardado versionado no
// afectó filas (otra transición se adelantó).
var ErrConflicto = &Error{
	Kind:    KindConflicto,
	Message: "La requisición fue modificada por otro usuario, vuelve a intentarlo.",
}

// KindOf extrae la clasificación de un error de dominio.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

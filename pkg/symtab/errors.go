package symtab

import "fmt"

// UnknownLifelineError is returned when a lifeline id has no
// entry in a GeneralContext.
type UnknownLifelineError struct {
	LfID int
}

func (e *UnknownLifelineError) Error() string {
	return fmt.Sprintf("symtab: unknown lifeline id %d", e.LfID)
}

// UnknownMessageError is returned when a message id has no
// entry in a GeneralContext.
type UnknownMessageError struct {
	MsgID int
}

func (e *UnknownMessageError) Error() string {
	return fmt.Sprintf("symtab: unknown message id %d", e.MsgID)
}

// UnknownMessageTypeError is returned when a named-message-type id has
// no entry in a GeneralContext.
type UnknownMessageTypeError struct {
	TypeID int
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("symtab: unknown message type id %d", e.TypeID)
}

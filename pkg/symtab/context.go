// Package symtab implements the interaction engine's symbol table: the
// append-only interning of lifeline, message, and named-message-type
// names into small dense integer ids, plus resolution of named types to
// the message-id sets they denote.
package symtab

// GeneralContext interns lifeline names, message names, and named
// message types. All three vectors grow only by appending: re-adding an
// existing name returns the id it already has, and ids handed out by a
// GeneralContext are stable and dense (0, 1, 2, ...) for the lifetime of
// the context.
//
// A GeneralContext is populated once at setup time by the parser (out of
// scope for this core, see spec.md §6) and is read-only for the rest of
// a run: every semantic operation in pkg/interaction, pkg/semantics, and
// pkg/analysis takes a *GeneralContext by pointer but never mutates it.
type GeneralContext struct {
	lfNames []string
	msNames []string
	mtNames []string
	mtSets  []MsgSet
}

// NewGeneralContext returns an empty symbol table.
func NewGeneralContext() *GeneralContext {
	return &GeneralContext{}
}

// AddLifeline interns name, returning its id. Re-adding the same name
// returns the id it was first assigned.
func (c *GeneralContext) AddLifeline(name string) int {
	if id, ok := c.LifelineID(name); ok {
		return id
	}
	c.lfNames = append(c.lfNames, name)
	return len(c.lfNames) - 1
}

// AddMessage interns name, returning its id.
func (c *GeneralContext) AddMessage(name string) int {
	if id, ok := c.MessageID(name); ok {
		return id
	}
	c.msNames = append(c.msNames, name)
	return len(c.msNames) - 1
}

// AddMessageType interns a named message type, associating it with the
// set of message ids it denotes. Re-adding the same name returns the
// existing id and does not update its message set.
func (c *GeneralContext) AddMessageType(name string, messages MsgSet) int {
	if id, ok := c.MessageTypeID(name); ok {
		return id
	}
	c.mtNames = append(c.mtNames, name)
	c.mtSets = append(c.mtSets, messages)
	return len(c.mtNames) - 1
}

// LifelineID returns the id of an interned lifeline name, if any.
func (c *GeneralContext) LifelineID(name string) (int, bool) {
	for i, n := range c.lfNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// MessageID returns the id of an interned message name, if any.
func (c *GeneralContext) MessageID(name string) (int, bool) {
	for i, n := range c.msNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// MessageTypeID returns the id of an interned named message type, if any.
func (c *GeneralContext) MessageTypeID(name string) (int, bool) {
	for i, n := range c.mtNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// LifelineCount returns the number of interned lifelines.
func (c *GeneralContext) LifelineCount() int { return len(c.lfNames) }

// MessageCount returns the number of interned messages.
func (c *GeneralContext) MessageCount() int { return len(c.msNames) }

// MessageTypeCount returns the number of interned named message types.
func (c *GeneralContext) MessageTypeCount() int { return len(c.mtNames) }

// AllLifelineIDs returns every lifeline id currently interned, 0..N-1.
func (c *GeneralContext) AllLifelineIDs() []int {
	ids := make([]int, len(c.lfNames))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// LifelineName resolves a lifeline id to its interned name.
func (c *GeneralContext) LifelineName(id int) (string, error) {
	if id < 0 || id >= len(c.lfNames) {
		return "", &UnknownLifelineError{LfID: id}
	}
	return c.lfNames[id], nil
}

// MessageName resolves a message id to its interned name.
func (c *GeneralContext) MessageName(id int) (string, error) {
	if id < 0 || id >= len(c.msNames) {
		return "", &UnknownMessageError{MsgID: id}
	}
	return c.msNames[id], nil
}

// MessageTypeName resolves a named-message-type id to its interned name.
func (c *GeneralContext) MessageTypeName(id int) (string, error) {
	if id < 0 || id >= len(c.mtNames) {
		return "", &UnknownMessageTypeError{TypeID: id}
	}
	return c.mtNames[id], nil
}

// MessageTypeMessages resolves a named-message-type id to the set of
// message ids it denotes.
func (c *GeneralContext) MessageTypeMessages(id int) (MsgSet, error) {
	if id < 0 || id >= len(c.mtNames) {
		return MsgSet{}, &UnknownMessageTypeError{TypeID: id}
	}
	return c.mtSets[id], nil
}

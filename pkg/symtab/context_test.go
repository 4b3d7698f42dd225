package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralContextInterning(t *testing.T) {
	ctx := NewGeneralContext()

	alice := ctx.AddLifeline("alice")
	bob := ctx.AddLifeline("bob")
	aliceAgain := ctx.AddLifeline("alice")

	assert.Equal(t, alice, aliceAgain, "re-adding a lifeline returns its existing id")
	assert.NotEqual(t, alice, bob)
	assert.Equal(t, 2, ctx.LifelineCount())

	name, err := ctx.LifelineName(alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = ctx.LifelineName(99)
	require.Error(t, err)
	var unknown *UnknownLifelineError
	assert.ErrorAs(t, err, &unknown)
}

func TestGeneralContextMessageTypes(t *testing.T) {
	ctx := NewGeneralContext()
	ping := ctx.AddMessage("ping")
	pong := ctx.AddMessage("pong")

	typeID := ctx.AddMessageType("any", NewMsgSet(ping, pong))
	messages, err := ctx.MessageTypeMessages(typeID)
	require.NoError(t, err)
	assert.True(t, messages.Has(ping))
	assert.True(t, messages.Has(pong))
	assert.Equal(t, 2, messages.Count())

	// re-adding a type name does not update its message set
	ctx.AddMessageType("any", NewMsgSet(ping))
	messages, err = ctx.MessageTypeMessages(typeID)
	require.NoError(t, err)
	assert.Equal(t, 2, messages.Count())
}

func TestUnknownMessageAndTypeErrors(t *testing.T) {
	ctx := NewGeneralContext()

	_, err := ctx.MessageName(0)
	var unknownMsg *UnknownMessageError
	assert.ErrorAs(t, err, &unknownMsg)

	_, err = ctx.MessageTypeMessages(0)
	var unknownType *UnknownMessageTypeError
	assert.ErrorAs(t, err, &unknownType)
}

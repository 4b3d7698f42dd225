package main

import (
	"fmt"

	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// fixture bundles everything a run needs: the term, its symbol table,
// and (for analyze/slice) a multi-trace and colocalization. There is no
// concrete-syntax parser in this core (spec.md §1/§6), so the CLI loads
// one of a small set of named, in-process fixtures instead of a file.
type fixture struct {
	ctx        *symtab.GeneralContext
	term       *interaction.Interaction
	multiTrace trace.MultiTrace
	coloc      trace.Colocalization
}

var fixtures = map[string]func() fixture{
	"ping-pong": pingPongFixture,
	"alt-loop":  altLoopFixture,
}

func loadFixture(name string) (fixture, error) {
	build, ok := fixtures[name]
	if !ok {
		return fixture{}, fmt.Errorf("unknown fixture %q (available: %s)", name, availableFixtureNames())
	}
	return build(), nil
}

func availableFixtureNames() string {
	names := make([]string, 0, len(fixtures))
	for n := range fixtures {
		names = append(names, n)
	}
	return fmt.Sprint(names)
}

// pingPongFixture: client sends "ping" to server, server receives it,
// then server sends "pong" back, weakly sequenced (CoReg with an empty
// relaxed set: each lifeline keeps its own order, distinct lifelines may
// interleave).
func pingPongFixture() fixture {
	ctx := symtab.NewGeneralContext()
	client := ctx.AddLifeline("client")
	server := ctx.AddLifeline("server")
	ping := ctx.AddMessage("ping")
	pong := ctx.AddMessage("pong")

	send1 := interaction.NewAction(interaction.NewBroadcastPrimitive(client, mte.NewSingleton(ping), []int{server}))
	send2 := interaction.NewAction(interaction.NewBroadcastPrimitive(server, mte.NewSingleton(pong), []int{client}))
	term := interaction.NewCoReg(nil, send1, send2)

	multiTrace := trace.MultiTrace{
		{trace.NewAction(client, trace.Emission, mte.NewSingleton(ping))},
		{
			trace.NewAction(server, trace.Reception, mte.NewSingleton(ping)),
			trace.NewAction(server, trace.Emission, mte.NewSingleton(pong)),
		},
	}
	coloc := trace.NewStaticColocalization([][]int{{client}, {server}})

	return fixture{ctx: ctx, term: term, multiTrace: multiTrace, coloc: coloc}
}

// altLoopFixture: a choice between a single "heartbeat" emission and a
// loop that repeats it, exercising Alt/Loop simplification.
func altLoopFixture() fixture {
	ctx := symtab.NewGeneralContext()
	monitor := ctx.AddLifeline("monitor")
	agent := ctx.AddLifeline("agent")
	heartbeat := ctx.AddMessage("heartbeat")

	beat := func() *interaction.Interaction {
		return interaction.NewAction(interaction.NewBroadcastPrimitive(agent, mte.NewSingleton(heartbeat), []int{monitor}))
	}

	once := beat()
	repeated := interaction.NewLoop(nil, beat())
	term := interaction.NewAlt(once, repeated)

	multiTrace := trace.MultiTrace{
		{trace.NewAction(agent, trace.Emission, mte.NewSingleton(heartbeat))},
		{trace.NewAction(monitor, trace.Reception, mte.NewSingleton(heartbeat))},
	}
	coloc := trace.NewStaticColocalization([][]int{{agent}, {monitor}})

	return fixture{ctx: ctx, term: term, multiTrace: multiTrace, coloc: coloc}
}

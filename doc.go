/*
Package tortuga compiles directed graphs of typed turtle-graphics nodes
(start, move, rotate, pen, loop) into command sequences and replays them as
animated drawing actors on a canvas.

The pipeline has three stages. The compiler resolves the node/edge snapshot
into a rooted tree, breaking cycles with loop-reference leaves. The
collector flattens the tree into execution paths, unrolling loops and
splitting on branches. The runtime then creates one actor per path and a
cooperative scheduler advances every actor by at most one command per tick,
drawing strokes onto a persistent trail surface and actor markers onto an
ephemeral layer.

Playback is controlled through a small state machine (idle, running,
paused) with pause/resume/stop and adjustable speed; every transition is
published synchronously to subscribers.

# Usage

	b := dsl.New()
	b.Start("start").Go("square")
	b.Add("square").Loop(4).Body("side")
	b.Add("side").Move(50).Go("turn")
	b.Add("turn").Rotate(90)

	eng := tortuga.New()
	if err := eng.StartFrom(b, domain.RunConfig{SpeedLevel: 5, ShowTrail: true}); err != nil {
		log.Fatal(err)
	}
	if err := eng.Wait(context.Background()); err != nil {
		log.Fatal(err)
	}
	eng.WriteSVG(os.Stdout)

The core never draws to a real display: surfaces are injected interfaces
(see ports), and the built-in ones render to SVG or the terminal.
*/
package tortuga

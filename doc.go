// Package fling recognizes swipe gestures on cards and animates the result.
//
// A [Controller] owns one card. Feed it pointer samples from your input
// layer; it drags and tilts the card while the pointer is down and, on
// release, decides between a zone click, a spring-back to the rest position
// and an animated exit through one of the container edges.
//
// # Quick start
//
//	card := fling.NewCard("ace", 120, 180, 240, 360)
//	anim := fling.NewTweenAnimator(1.5)
//	c, err := fling.NewController(card, anim, "ace", fling.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	c.SetListener(fling.Callbacks{
//		Exited: func(origin fling.Vec2, data any, edge fling.Edge) {
//			fmt.Println(data, "left through", edge)
//		},
//	})
//
// Then, once per frame, deliver input and advance the animator:
//
//	c.Press(0, local, now)    // pointer down on the card
//	c.Move(0, local, now)     // pointer moved
//	c.Release(0, local, screen, now, velocity)
//	anim.Update(1.0 / 60)
//
// Local coordinates are relative to the card's top-left corner at the time
// of the press. The ebiteninput package does all of this for Ebitengine
// games, including hit testing and velocity tracking.
//
// # Outcomes
//
// A short press that lands in one of the four 25% bands of the card is a
// zone click. A fast release commits to the edge it points at when it
// travelled far enough. Any release that leaves the card center outside the
// central half of the container commits to the nearest crossed border.
// Everything else springs back with an overshoot. Exits are reported only
// when their animation completes; a cancelled exit reports nothing.
//
// Set [Config.Axes] to [AxesHorizontal] to keep cards on the horizontal
// axis, and use [Controller.Dismiss] to send a card away without a gesture.
//
// # Animation
//
// Controllers never animate themselves. They describe each flight as an
// [AnimationSpec] and hand it to an [Animator]. [TweenAnimator] plays them
// with [gween] tweens; a nil animator jumps to the end immediately, which is
// handy in tests.
//
// # Events
//
// Besides the [Listener], a controller can forward every outcome to an
// [EventStore]. The ecs package publishes them to a [Donburi] world and the
// journal package records them in SQLite.
//
// # Testing
//
// [Injector] replays synthetic pointer input on a virtual clock and
// [ScriptRunner] drives it from JSON gesture scripts.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package fling

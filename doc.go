// Package wavepath finds shortest routes on a square grid by flooding it
// with a breadth-first "wave" and walking the resulting distance field back
// from the finish.
//
// 🚀 What is wavepath?
//
//	A small, thread-safe toolkit split into focused subpackages:
//		• grid:      block types, distances, resets, snapshots & text rendering
//		• wave:      level-synchronous BFS with per-round hooks
//		• backtrack: greedy descent over the distance field to highlight a route
//		• search:    one background search at a time, paced for animation
//		• config:    .env + environment settings, slog loggers
//		• server:    JSON API, server-sent events and Prometheus metrics
//
// ✨ Why wavepath?
//
//   - Every search step is observable – hooks and observers after each
//     round and each reconstruction step
//   - Safe to watch while it runs – readers take snapshots, editors are
//     rejected until the search ends or is cancelled
//   - Cancellable – pacing sleeps honour context.Context
//
// Quick ASCII example (5×5, wall row with a gap):
//
//	S....        Soooo
//	.....        ***oo
//	##.##   →    ##*##
//	.....        oo*oo
//	....F        .o**F
//
// Run it from the terminal:
//
//	go run ./cmd/wavepath run --size 5 --finish 4,4 --wall 0,2 --wall 1,2 --wall 3,2 --wall 4,2
package wavepath

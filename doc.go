// Package evacroute finds the least-cost evacuation route from a chosen room
// to every exit of a building, and keeps those routes current while rooms
// fill with smoke, corridors close and crowds slow people down.
//
// What is evacroute?
//
//	A building is an undirected weighted graph: rooms and halls are nodes,
//	corridors and stairwells are edges. Live conditions are layered on top:
//		• Obstacles: rooms that must not be entered
//		• Blocked edges: corridors that must not be crossed, in either direction
//		• Delays: extra cost for passing through a congested room
//
// Under the hood, everything is organized into small packages:
//
//	core/       — the graph and its constraint sets, snapshots, hit-testing
//	dijkstra/   — constraint-aware least-cost routing with deterministic ties
//	bfs/        — breadth-first reachability and stranded-room detection
//	dfs/        — depth-first search and chokepoint analysis
//	action/     — the discrete actions a user can take
//	editor/     — edit mode: place rooms and exits, draw corridors, delete
//	controller/ — run mode: pick a start, toggle constraints, recompute routes
//	session/    — switches between edit and run mode for one graph
//	floorplan/  — the built-in office floor
//	script/     — HCL action scripts replayed against a session
//	config/     — TOML configuration
//	logging/    — slog construction and context plumbing
//	ui/         — terminal tables for graphs and routes
//	cli/        — the evacroute command
//
// Quick ASCII example:
//
//	    A──1──B──1──D (exit)
//	    │           │
//	    1           5
//	    │           │
//	    └─────C─────┘
//
//	Route A → D costs 2 through B. Put an obstacle on B and the route
//	becomes A → C → D at cost 6.
//
// See the dijkstra package examples for runnable code.
package evacroute

// Package score holds the CPU-bound planning helpers: lattice pathfinding
// and mining-strategy ranking. Both are pure functions over plain values;
// Pool runs them behind a request/response boundary so callers can cap
// concurrency and time out.
package score

import (
	"mindcraftce.ai/internal/task"
)

// openSetLimit aborts searches that flood. A 6-connected frontier past a
// thousand nodes means the goal is walled off or absurdly far.
const openSetLimit = 1000

var neighborOffsets = [6]task.Vec3{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// FindPath runs A* over the 6-connected integer lattice. Obstacles block
// exact positions. The returned path runs start to goal inclusive; found is
// false when the goal is unreachable or the search hits the open-set limit.
func FindPath(start, goal task.Vec3, obstacles []task.Vec3) ([]task.Vec3, bool) {
	blocked := make(map[task.Vec3]struct{}, len(obstacles))
	for _, o := range obstacles {
		blocked[o] = struct{}{}
	}
	if _, bad := blocked[goal]; bad {
		return nil, false
	}
	if start == goal {
		return []task.Vec3{start}, true
	}

	open := []task.Vec3{start}
	inOpen := map[task.Vec3]struct{}{start: {}}
	closed := make(map[task.Vec3]struct{})
	cameFrom := make(map[task.Vec3]task.Vec3)
	gScore := map[task.Vec3]int{start: 0}
	fScore := map[task.Vec3]int{start: task.Manhattan(start, goal)}

	for len(open) > 0 {
		if len(open) > openSetLimit {
			return nil, false
		}
		// Linear scan with strict < resolves f ties by insertion order,
		// keeping the search deterministic.
		best := 0
		for i := 1; i < len(open); i++ {
			if fScore[open[i]] < fScore[open[best]] {
				best = i
			}
		}
		current := open[best]
		if current == goal {
			return reconstruct(cameFrom, current), true
		}
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, current)
		closed[current] = struct{}{}

		for _, d := range neighborOffsets {
			n := task.Vec3{X: current.X + d.X, Y: current.Y + d.Y, Z: current.Z + d.Z}
			if _, bad := blocked[n]; bad {
				continue
			}
			if _, done := closed[n]; done {
				continue
			}
			g := gScore[current] + 1
			if old, seen := gScore[n]; seen && g >= old {
				continue
			}
			cameFrom[n] = current
			gScore[n] = g
			fScore[n] = g + task.Manhattan(n, goal)
			if _, queued := inOpen[n]; !queued {
				open = append(open, n)
				inOpen[n] = struct{}{}
			}
		}
	}
	return nil, false
}

func reconstruct(cameFrom map[task.Vec3]task.Vec3, end task.Vec3) []task.Vec3 {
	path := []task.Vec3{end}
	for {
		prev, ok := cameFrom[end]
		if !ok {
			break
		}
		path = append(path, prev)
		end = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

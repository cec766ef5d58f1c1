package world

import "math/rand"

// SampleRooms places up to target non-overlapping rooms by rejection
// sampling. Each attempt draws a size in [minSize, maxSize] and a
// position that keeps the room inside the grid. It stops after
// maxAttempts draws or once target rooms are accepted, whichever comes
// first. The second result is the number of attempts used.
func SampleRooms(rng *rand.Rand, width, height, minSize, maxSize, target, maxAttempts int) ([]Room, int) {
	rooms := make([]Room, 0, target)
	if target <= 0 {
		return rooms, 0
	}

	attempts := 0
	for attempts < maxAttempts {
		attempts++

		w := minSize + rng.Intn(maxSize-minSize+1)
		h := minSize + rng.Intn(maxSize-minSize+1)
		if w > width || h > height {
			continue
		}
		candidate := Room{
			X:      rng.Intn(width - w + 1),
			Y:      rng.Intn(height - h + 1),
			Width:  w,
			Height: h,
		}

		if overlapsAny(candidate, rooms) {
			continue
		}
		rooms = append(rooms, candidate)
		if len(rooms) >= target {
			break
		}
	}
	return rooms, attempts
}

func overlapsAny(r Room, rooms []Room) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

package lobby

import "math/rand/v2"

const roomCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomRoomCode draws a uniform n-character alphanumeric code. Grounded on
// palemoky-fight-the-landlord's numeric-only room codes (other_examples/
// palemoky-fight-the-landlord__room.go), widened to the full alphanumeric
// charset per SPEC_FULL.md §4.4.
func randomRoomCode(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
	}
	return string(out)
}

package gen

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// UUID generates a type-4 (random) UUID by drawing two 64-bit values
// from the splittable RNG and masking in the version (4) and variant
// (RFC 4122) bits, exactly as uuid.NewRandom would from crypto/rand —
// except deterministically, from rng.State, so results replay. The
// result is a leaf rose (no shrink children): a "simpler" UUID isn't a
// meaningful concept, so shrinking never touches it.
func UUID() Generator[uuid.UUID] {
	return func(s rng.State, _ int) rose.Tree[uuid.UUID] {
		s1, hi := rng.RandLong(s)
		_, lo := rng.RandLong(s1)

		var b [16]byte
		binary.BigEndian.PutUint64(b[0:8], uint64(hi))
		binary.BigEndian.PutUint64(b[8:16], uint64(lo))
		b[6] = (b[6] & 0x0f) | 0x40 // version 4
		b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

		id, err := uuid.FromBytes(b[:])
		if err != nil {
			// FromBytes only fails on wrong slice length; b is fixed at 16.
			panic(&InvalidArgumentError{Op: "UUID", Msg: err.Error()})
		}
		return rose.Pure(id)
	}
}

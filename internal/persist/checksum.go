package persist

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// SnapshotChecksum computes a stable digest over a snapshot's counters so
// exported rows can be cross-checked later. Species counts are folded in
// ascending ID order to keep the digest independent of map iteration.
func SnapshotChecksum(s Snapshot) string {
	h, _ := blake2b.New256(nil)

	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	writeInt(s.Tick)
	writeInt(int64(s.Population))
	writeInt(s.Births)
	writeInt(s.Deaths)

	ids := make([]int32, 0, len(s.BySpecies))
	for id := range s.BySpecies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		writeInt(int64(id))
		writeInt(int64(s.BySpecies[id]))
	}

	return hex.EncodeToString(h.Sum(nil))
}

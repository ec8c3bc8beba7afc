package pos

import (
	"encoding/binary"
	"fmt"

	"github.com/minio/highwayhash"
)

// identityKey is a fixed, non-secret key: stable node identity only needs to be
// reproducible across runs of this process, not to resist tampering.
var identityKey = []byte("lintric-sub000-stable-node-id!!!")

// NodeID is a stable arena-independent identity for a CST node: a hash of its
// grammar kind and byte range. Two parses of identical source produce
// identical NodeIDs for corresponding nodes, independent of pointer identity.
type NodeID uint64

// StableID hashes a node's kind string together with its byte range.
func StableID(kind string, startByte, endByte uint32) NodeID {
	buf := make([]byte, 0, len(kind)+8)
	buf = append(buf, kind...)
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], startByte)
	binary.LittleEndian.PutUint32(b[4:8], endByte)
	buf = append(buf, b[:]...)
	h, err := highwayhash.New64(identityKey)
	if err != nil {
		// identityKey is a fixed 32-byte constant; New64 only fails on key length.
		panic(fmt.Sprintf("pos: invalid highwayhash key: %v", err))
	}
	_, _ = h.Write(buf)
	return NodeID(h.Sum64())
}

package kindling

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

var idSeq atomic.Uint64

// newID derives a node id by hashing the definition site together with an
// allocation sequence. The sequence goes into the hashed input so all 64
// hash bits survive; ids from different call sites stay distinct no
// matter how many nodes have been allocated.
func newID(kind, definedAt string) uint64 {
	seq := strconv.FormatUint(idSeq.Add(1), 10)
	return xxhash.Sum64String(kind + "@" + definedAt + "#" + seq)
}

// callerLoc reports the file:line of the caller `skip` frames above the
// caller of callerLoc itself.
func callerLoc(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

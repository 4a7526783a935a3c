package gif

import (
	"sync"

	"github.com/deepteams/gif/internal/lzw"
)

// decoderPool recycles *lzw.Decoder values (the 4096-entry code table plus
// the prefix-walk stack) across Parse calls, the same acquire/release
// shape used for the scratch buffers in a pooled codec decoder: the
// table is large enough that zeroing and reallocating it per call would
// dominate the cost of decoding small images.
var decoderPool = sync.Pool{
	New: func() any { return lzw.NewDecoder() },
}

func acquireLZWDecoder() *lzw.Decoder {
	return decoderPool.Get().(*lzw.Decoder)
}

func releaseLZWDecoder(d *lzw.Decoder) {
	decoderPool.Put(d)
}

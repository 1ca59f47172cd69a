// Package postings implements the disk-backed posting-list cursor: given a
// byte offset and a metadata-block size into a chunked, VByte-compressed
// inverted-index file, it exposes a seek-driven nextGEQ primitive that
// amortises decoding across chunks using a per-list skip pointer table.
package postings

import (
	"fmt"

	"github.com/hieudo/queryproc/internal/vbyte"
)

const maxChunkSize = 128

// NoDocID is returned by NextGEQ when no docID in the list is >= the
// requested floor.
//
// Cursor.NextGEQ additionally returns an ok bool; callers that need a
// single return value for interop with the sentinel-based C++ original can
// compare the returned docID against NoDocID.
const NoDocID = ^uint64(0)

// Source is the random-access byte source backing an index file. A single
// *os.File satisfies it, and so does any in-memory byte-slice adapter with a
// ReadAt method, which is what the cursor's tests use to avoid touching disk.
type Source interface {
	ReadAt(p []byte, off int64) (int, error)
}

// Cursor iterates one term's inverted list lazily, decoding one chunk at a
// time and never decoding a chunk it can skip past via the lastDids skip
// pointer.
type Cursor struct {
	src Source

	chunkSizes []uint64 // length 2*len(lastDids): [size_did0, size_freq0, size_did1, ...]
	lastDids   []uint64

	chunkStartPos int64

	currChunkIdx int
	currDids     []uint64
	currFreqs    []uint64
	currDidIdx   int
	haveChunk    bool

	closed bool
}

// Open reads the metadataSize-byte metadata block at invListPos from src,
// VByte-decodes it, and parses the chunk-size and skip-pointer (lastDids)
// vectors. It does not materialise any chunk payload.
func Open(src Source, invListPos int64, metadataSize int64) (*Cursor, error) {
	raw := make([]byte, metadataSize)
	if _, err := src.ReadAt(raw, invListPos); err != nil {
		return nil, fmt.Errorf("%w: reading metadata block: %s", ErrIO, err)
	}
	decoded, err := vbyte.Decode(raw)
	if err != nil {
		return nil, newCorruptMetadataError(fmt.Sprintf("metadata block failed to decode: %s", err))
	}
	if len(decoded) == 0 {
		return nil, newCorruptMetadataError("empty metadata block")
	}

	i := 0
	numChunkSizes := int(decoded[i])
	i++
	if numChunkSizes < 0 || i+numChunkSizes > len(decoded) {
		return nil, newCorruptMetadataError("numChunkSizes exceeds available metadata")
	}
	chunkSizes := append([]uint64(nil), decoded[i:i+numChunkSizes]...)
	i += numChunkSizes

	if i >= len(decoded) {
		return nil, newCorruptMetadataError("metadata block truncated before numLastDids")
	}
	numLastDids := int(decoded[i])
	i++
	if numLastDids < 0 || i+numLastDids > len(decoded) {
		return nil, newCorruptMetadataError("numLastDids exceeds available metadata")
	}
	lastDids := append([]uint64(nil), decoded[i:i+numLastDids]...)

	if len(chunkSizes) != 2*len(lastDids) {
		return nil, newCorruptMetadataError("numChunkSizes != 2*numLastDids")
	}

	return &Cursor{
		src:           src,
		chunkSizes:    chunkSizes,
		lastDids:      lastDids,
		chunkStartPos: invListPos + metadataSize,
	}, nil
}

// NextGEQ returns the smallest docID >= k present in the list. ok is false
// when no such docID exists (list exhausted); the docID return value is
// NoDocID in that case, for callers that prefer the sentinel form.
//
// Successive calls with non-decreasing k produce non-decreasing results;
// the cursor never rewinds to an earlier chunk.
func (c *Cursor) NextGEQ(k uint64) (uint64, bool, error) {
	// 1. Skip scan: sum payload sizes of chunks whose lastDid < k.
	numSkipBytes := int64(0)
	target := 0
	for target < len(c.lastDids) && c.lastDids[target] < k {
		numSkipBytes += int64(c.chunkSizes[target*2] + c.chunkSizes[target*2+1])
		target++
	}
	if target == len(c.lastDids) {
		return NoDocID, false, nil
	}

	// 2. Chunk materialisation, only if we don't already have this chunk loaded.
	if !c.haveChunk || target != c.currChunkIdx {
		if err := c.loadChunk(target, numSkipBytes); err != nil {
			return NoDocID, false, err
		}
	}

	// 3. Intra-chunk linear scan.
	for c.currDidIdx < len(c.currDids) && c.currDids[c.currDidIdx] < k {
		c.currDidIdx++
	}
	if c.currDidIdx >= len(c.currDids) {
		return NoDocID, false, newInvariantViolationError(target, k, "chunk exhausted without reaching a docID >= k despite lastDid >= k")
	}
	return c.currDids[c.currDidIdx], true, nil
}

func (c *Cursor) loadChunk(idx int, skipBytes int64) error {
	didSize := c.chunkSizes[idx*2]
	freqSize := c.chunkSizes[idx*2+1]

	didRaw := make([]byte, didSize)
	if _, err := c.src.ReadAt(didRaw, c.chunkStartPos+skipBytes); err != nil {
		return fmt.Errorf("%w: reading did block for chunk %d: %s", ErrIO, idx, err)
	}
	dids, err := vbyte.Decode(didRaw)
	if err != nil {
		return newCorruptChunkError(idx, fmt.Sprintf("did block failed to decode: %s", err))
	}

	freqRaw := make([]byte, freqSize)
	if _, err := c.src.ReadAt(freqRaw, c.chunkStartPos+skipBytes+int64(didSize)); err != nil {
		return fmt.Errorf("%w: reading freq block for chunk %d: %s", ErrIO, idx, err)
	}
	freqs, err := vbyte.Decode(freqRaw)
	if err != nil {
		return newCorruptChunkError(idx, fmt.Sprintf("freq block failed to decode: %s", err))
	}

	if len(dids) != len(freqs) {
		return newCorruptChunkError(idx, fmt.Sprintf("did/freq length mismatch: %d vs %d", len(dids), len(freqs)))
	}
	if len(dids) > maxChunkSize {
		return newCorruptChunkError(idx, fmt.Sprintf("chunk exceeds %d postings: %d", maxChunkSize, len(dids)))
	}

	c.currDids = dids
	c.currFreqs = freqs
	c.currDidIdx = 0
	c.currChunkIdx = idx
	c.haveChunk = true
	return nil
}

// GetFreq returns the frequency paired with the docID most recently
// returned by NextGEQ. It is only defined immediately after a successful
// NextGEQ call.
func (c *Cursor) GetFreq() uint64 {
	return c.currFreqs[c.currDidIdx]
}

// GetNumDid returns the number of chunks in the list, used as the (approximate)
// document frequency f_t for BM25 IDF — see DESIGN.md for why this is kept
// bug-compatible with the chunk-count approximation rather than an exact
// posting count.
func (c *Cursor) GetNumDid() uint64 {
	return uint64(len(c.lastDids))
}

// Close releases the cursor's decoded chunk buffers. Idempotent. The
// backing Source (typically a single *os.File shared across every cursor
// in a traversal, per §5's sharing allowance) is owned by the dispatcher,
// not the cursor, and is never closed here.
func (c *Cursor) Close() error {
	c.currDids = nil
	c.currFreqs = nil
	c.closed = true
	return nil
}

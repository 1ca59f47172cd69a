package postings

import "github.com/hieudo/queryproc/internal/vbyte"

// buildList encodes a complete inverted list (metadata block + chunk
// payloads) from a list of chunks, each a parallel (dids, freqs) pair. It
// mirrors the builder-function style the teacher's own tests use to
// assemble binary fixtures by hand (see testutils.go's file/flatten
// helpers) rather than shipping pre-baked binary blobs.
func buildList(chunks [][2][]uint64) (data []byte, metadataSize int64) {
	chunkSizes := make([]uint64, 0, 2*len(chunks))
	lastDids := make([]uint64, 0, len(chunks))
	var payload []byte
	for _, chunk := range chunks {
		dids, freqs := chunk[0], chunk[1]
		didBlock := vbyte.Encode(dids)
		freqBlock := vbyte.Encode(freqs)
		chunkSizes = append(chunkSizes, uint64(len(didBlock)), uint64(len(freqBlock)))
		lastDids = append(lastDids, dids[len(dids)-1])
		payload = append(payload, didBlock...)
		payload = append(payload, freqBlock...)
	}

	meta := make([]uint64, 0, 2+len(chunkSizes)+len(lastDids))
	meta = append(meta, uint64(len(chunkSizes)))
	meta = append(meta, chunkSizes...)
	meta = append(meta, uint64(len(lastDids)))
	meta = append(meta, lastDids...)
	metaBytes := vbyte.Encode(meta)

	data = append(append([]byte(nil), metaBytes...), payload...)
	return data, int64(len(metaBytes))
}

// source adapts an in-memory byte slice to the Source interface.
type source []byte

func (s source) ReadAt(p []byte, off int64) (int, error) {
	n := copy(p, s[off:])
	return n, nil
}

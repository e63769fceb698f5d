package ncdf

// NumRecs computes how many whole records fit within totalLength bytes
// of file image, given h's record layout. It returns -1 if totalLength
// is negative.
//
// This takes the length the caller already has rather than stat'ing a
// file itself, so it stays a pure function of the header and a byte
// count.
func (h *Header) NumRecs(totalLength int64) int64 {
	if totalLength < 0 {
		return -1
	}

	offs, size := h.recordSlab()
	if size == 0 || totalLength < offs {
		return 0
	}
	return (totalLength - offs) / size
}

// recordSlab returns the byte offset of the start of the interleaved
// record area and the record step, or (0, 0) if there are no record
// variables.
func (h *Header) recordSlab() (offset, step int64) {
	for i := range h.Variables {
		if h.Variables[i].IsRecord {
			return h.Variables[i].Offset, int64(h.RecordDimension.RecordStep)
		}
	}
	return 0, 0
}

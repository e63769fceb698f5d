package ncdf

// extractVariable reads a variable's full set of decoded values, given
// a cursor over the file image. c is expected to be an independent
// cursor — see newCursor/clone — since both paths reposition it freely.
//
// Two strategies, selected by v.IsRecord:
//
//   - non-record: one Value per element, each obtained by reading a
//     single element at a time (read_one(code, 1)), contiguous from
//     v.Offset.
//   - record: one Value per record, each obtained by reading a whole
//     record's worth of elements (read_one(code, width)) and then
//     jumping by the full record step to reach this variable's slice of
//     the next record — because records of different variables are
//     interleaved on disk.
func extractVariable(c *cursor, v *Variable, rd RecordDimension) ([]Value, error) {
	if v.IsRecord {
		return extractRecordVariable(c, v, rd)
	}
	return extractNonRecordVariable(c, v)
}

func extractNonRecordVariable(c *cursor, v *Variable) ([]Value, error) {
	elemSize := sizeBytes(v.Type)
	elementCount := 0
	if elemSize > 0 {
		elementCount = int(v.SizeBytes / elemSize)
	}

	c.seek(v.Offset)

	out := make([]Value, elementCount)
	for i := range out {
		val, err := readOne(c, v.Type, 1)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func extractRecordVariable(c *cursor, v *Variable, rd RecordDimension) ([]Value, error) {
	elemSize := sizeBytes(v.Type)
	width := 1
	if v.SizeBytes > 0 && elemSize > 0 {
		width = int(v.SizeBytes / elemSize)
	}

	c.seek(v.Offset)

	out := make([]Value, rd.Length)
	for i := range out {
		current := c.offset()
		val, err := readOne(c, v.Type, width)
		if err != nil {
			return nil, err
		}
		out[i] = val
		c.seek(current + int64(rd.RecordStep))
	}
	return out, nil
}

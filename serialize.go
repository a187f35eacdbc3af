package mih

import (
	"bytes"
	"encoding/binary"
	"io"
)

// serializeVersion is the format version written by WriteTo. It is checked
// on read so a future incompatible layout change can be detected instead of
// silently misparsed.
const serializeVersion = 1

// WriteTo serializes idx to w using the format from component I:
//
//	version (1 byte), W (1 byte), N (8 bytes), m (4 bytes),
//	codes[0..N) little-endian at W/8 bytes each, then for each block i:
//	b_i (1 byte), offsets[0..=2^b_i] (8 bytes each), ids[0..N) (4 bytes each).
//
// All multi-byte integers are little-endian. Write failures are reported as
// an *Error of kind IoFailure.
func (idx *Index[T]) WriteTo(w io.Writer) (int64, error) {
	var written int64

	write := func(p []byte) error {
		n, err := w.Write(p)
		written += int64(n)
		if err != nil {
			return wrapError(IoFailure, err, "write serialized index")
		}
		return nil
	}

	codeWidth := width[T]()
	var hdr [8]byte
	hdr[0] = serializeVersion
	hdr[1] = byte(codeWidth)
	if err := write(hdr[:2]); err != nil {
		return written, err
	}

	var buf8 [8]byte
	binary.LittleEndian.PutUint64(buf8[:], uint64(idx.Len()))
	if err := write(buf8[:]); err != nil {
		return written, err
	}

	var buf4 [4]byte
	binary.LittleEndian.PutUint32(buf4[:], uint32(idx.m))
	if err := write(buf4[:]); err != nil {
		return written, err
	}

	byteWidth := codeWidth / 8
	codeBuf := make([]byte, byteWidth)
	for _, code := range idx.codes {
		v := uint64(code)
		for b := 0; b < byteWidth; b++ {
			codeBuf[b] = byte(v >> (8 * b))
		}
		if err := write(codeBuf); err != nil {
			return written, err
		}
	}

	for i := 0; i < idx.m; i++ {
		table := idx.tables[i]
		bw := idx.widths[i]
		if err := write([]byte{byte(bw)}); err != nil {
			return written, err
		}
		for _, offset := range table.offsets {
			binary.LittleEndian.PutUint64(buf8[:], uint64(offset))
			if err := write(buf8[:]); err != nil {
				return written, err
			}
		}
		for _, id := range table.ids {
			binary.LittleEndian.PutUint32(buf4[:], id)
			if err := write(buf4[:]); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// ReadFrom deserializes an Index from r, replacing idx's contents in place.
// It recomputes each block width from W and m and cross-checks it against the
// stored b_i, and validates that each table's offsets are non-decreasing,
// start at 0, and end at N — any mismatch, or any truncation of the
// expected byte stream, is reported as an *Error of kind CorruptStream.
// Underlying reader failures (other than EOF/truncation) are reported as
// IoFailure.
func (idx *Index[T]) ReadFrom(r io.Reader) (int64, error) {
	var read int64

	readFull := func(p []byte) error {
		n, err := io.ReadFull(r, p)
		read += int64(n)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return newError(CorruptStream, "truncated stream")
		}
		if err != nil {
			return wrapError(IoFailure, err, "read serialized index")
		}
		return nil
	}

	var hdr [2]byte
	if err := readFull(hdr[:]); err != nil {
		return read, err
	}
	if hdr[0] != serializeVersion {
		return read, newErrorf(CorruptStream, "unsupported version %d", hdr[0])
	}
	codeWidth := width[T]()
	if int(hdr[1]) != codeWidth {
		return read, newErrorf(CorruptStream, "width mismatch: stream has %d, type has %d", hdr[1], codeWidth)
	}

	var buf8 [8]byte
	if err := readFull(buf8[:]); err != nil {
		return read, err
	}
	n := binary.LittleEndian.Uint64(buf8[:])

	var buf4 [4]byte
	if err := readFull(buf4[:]); err != nil {
		return read, err
	}
	m := int(binary.LittleEndian.Uint32(buf4[:]))
	if m < 1 || m > codeWidth {
		return read, newErrorf(CorruptStream, "invalid block count m=%d", m)
	}

	byteWidth := codeWidth / 8
	codes := make([]T, n)
	codeBuf := make([]byte, byteWidth)
	for j := range codes {
		if err := readFull(codeBuf); err != nil {
			return read, err
		}
		var v uint64
		for b := 0; b < byteWidth; b++ {
			v |= uint64(codeBuf[b]) << (8 * b)
		}
		codes[j] = T(v)
	}

	expectedWidths := blockWidths(codeWidth, m)
	tables := make([]sparseTable, m)
	for i := 0; i < m; i++ {
		var bwByte [1]byte
		if err := readFull(bwByte[:]); err != nil {
			return read, err
		}
		bw := int(bwByte[0])
		if bw != expectedWidths[i] {
			return read, newErrorf(CorruptStream, "block %d width mismatch: stream has %d, expected %d", i, bw, expectedWidths[i])
		}

		numBuckets := int(uint64(1) << uint(bw))
		offsets := make([]uint32, numBuckets+1)
		prev := uint64(0)
		for v := range offsets {
			if err := readFull(buf8[:]); err != nil {
				return read, err
			}
			val := binary.LittleEndian.Uint64(buf8[:])
			if val < prev || val > n {
				return read, newErrorf(CorruptStream, "block %d offsets not monotone or out of range", i)
			}
			prev = val
			offsets[v] = uint32(val)
		}
		if offsets[0] != 0 || uint64(offsets[numBuckets]) != n {
			return read, newErrorf(CorruptStream, "block %d offsets do not span [0, %d]", i, n)
		}

		ids := make([]uint32, n)
		for j := range ids {
			if err := readFull(buf4[:]); err != nil {
				return read, err
			}
			ids[j] = binary.LittleEndian.Uint32(buf4[:])
		}

		tables[i] = sparseTable{offsets: offsets, ids: ids}
	}

	idx.codes = codes
	idx.m = m
	idx.widths = expectedWidths
	idx.tables = tables
	return read, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (idx *Index[T]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := idx.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (idx *Index[T]) UnmarshalBinary(data []byte) error {
	_, err := idx.ReadFrom(bytes.NewReader(data))
	return err
}

package coff

import "encoding/binary"

// objectBuilder lays out the parts of a COFF file that the parser reads.
// Everything else (machine, sections, symbol values) is left zero.
type objectBuilder struct {
	symbolTableOffset uint32
	entries           [][SymbolSize]byte
	strings           []byte
	// stringTableSize overrides the size prefix when non-zero.
	stringTableSize uint32
}

func newObject(symbolTableOffset uint32) *objectBuilder {
	return &objectBuilder{symbolTableOffset: symbolTableOffset}
}

// short adds an entry with an inline name. name must be at most 8 bytes and
// must not start with four null bytes.
func (b *objectBuilder) short(name string) *objectBuilder {
	var e [SymbolSize]byte
	copy(e[:ShortNameSize], name)
	e[16] = 2 // IMAGE_SYM_CLASS_EXTERNAL
	b.entries = append(b.entries, e)
	return b
}

// long adds an entry whose name is appended to the string table.
func (b *objectBuilder) long(name string) *objectBuilder {
	off := uint32(StringTableSizeFieldSize + len(b.strings))
	b.strings = append(b.strings, name...)
	b.strings = append(b.strings, 0)
	return b.ref(off)
}

// ref adds an entry pointing at an arbitrary string table offset.
func (b *objectBuilder) ref(off uint32) *objectBuilder {
	var e [SymbolSize]byte
	binary.LittleEndian.PutUint32(e[4:8], off)
	b.entries = append(b.entries, e)
	return b
}

// aux adds a raw record, e.g. an auxiliary symbol record.
func (b *objectBuilder) aux(raw [SymbolSize]byte) *objectBuilder {
	b.entries = append(b.entries, raw)
	return b
}

func (b *objectBuilder) bytes() []byte {
	size := int(b.symbolTableOffset) + len(b.entries)*SymbolSize + StringTableSizeFieldSize + len(b.strings)
	if size < 20 {
		size = 20
	}
	out := make([]byte, size)
	binary.LittleEndian.PutUint16(out[0:2], 0x8664) // IMAGE_FILE_MACHINE_AMD64
	binary.LittleEndian.PutUint32(out[HeaderPointerToSymbolTableOffset:], b.symbolTableOffset)
	binary.LittleEndian.PutUint32(out[HeaderNumberOfSymbolsOffset:], uint32(len(b.entries)))

	off := int(b.symbolTableOffset)
	for _, e := range b.entries {
		copy(out[off:], e[:])
		off += SymbolSize
	}

	strSize := b.stringTableSize
	if strSize == 0 {
		strSize = uint32(StringTableSizeFieldSize + len(b.strings))
	}
	binary.LittleEndian.PutUint32(out[off:], strSize)
	copy(out[off+StringTableSizeFieldSize:], b.strings)
	return out
}

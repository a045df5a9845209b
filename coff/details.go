package coff

import (
	"fmt"
	"strings"
)

// Details is the symbol table summary of one COFF file. It is immutable once
// returned by Parse or Read.
type Details struct {
	names             []string
	symbolTableOffset uint32
	numberOfSymbols   uint32
	stringTableSize   uint32
}

// SymbolTableOffset returns the absolute file offset of the first symbol
// table entry (PointerToSymbolTable).
func (d *Details) SymbolTableOffset() uint32 {
	return d.symbolTableOffset
}

// NumberOfSymbols returns the number of 18-byte symbol table entries,
// auxiliary entries included.
func (d *Details) NumberOfSymbols() uint32 {
	return d.numberOfSymbols
}

// StringTableOffset returns the absolute file offset of the string table.
// It is always SymbolTableOffset + NumberOfSymbols*18, computed in 64 bits
// so a large header cannot wrap around.
func (d *Details) StringTableOffset() int64 {
	return stringTableOffset(d.symbolTableOffset, d.numberOfSymbols)
}

// StringTableSize returns the size of the string table in bytes, including
// its own 4-byte size prefix.
func (d *Details) StringTableSize() uint32 {
	return d.stringTableSize
}

// Len returns the number of resolved symbol names, which always equals
// NumberOfSymbols.
func (d *Details) Len() int {
	return len(d.names)
}

// SymbolName returns the resolved name of entry i.
func (d *Details) SymbolName(i int) string {
	return d.names[i]
}

// SymbolNames returns a copy of the resolved names in entry order.
func (d *Details) SymbolNames() []string {
	return append([]string(nil), d.names...)
}

// EntryOffset returns the absolute file offset of symbol table entry i.
func (d *Details) EntryOffset(i int) int64 {
	return entryOffset(d.symbolTableOffset, uint32(i))
}

func (d *Details) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "symbol table offset: %d\n", d.symbolTableOffset)
	fmt.Fprintf(&b, "number of symbols: %d\n", d.numberOfSymbols)
	fmt.Fprintf(&b, "string table offset: %d\n", d.StringTableOffset())
	fmt.Fprintf(&b, "string table size: %d\n", d.stringTableSize)
	for i, name := range d.names {
		fmt.Fprintf(&b, "[%d] %s\n", i, name)
	}
	return b.String()
}

func entryOffset(symbolTableOffset, index uint32) int64 {
	return int64(symbolTableOffset) + int64(index)*SymbolSize
}

func stringTableOffset(symbolTableOffset, numberOfSymbols uint32) int64 {
	return entryOffset(symbolTableOffset, numberOfSymbols)
}

// Package coffview extracts the symbol table of a COFF (Common Object File
// Format) object file.
//
// A single parse pass locates the symbol table through the file header, reads
// the size prefix of the string table that follows it, and resolves the name
// of every symbol table entry, either from the 8-byte inline name field or
// from the string table.
//
// # Architecture Overview
//
//	coffview/            Root package with the Source interface
//	├── coff/            Header, string table size and symbol name parsing
//	├── errors/          Structured error types (phase + kind)
//	└── cmd/coffview/    Command-line front end and interactive browser
//
// # Quick Start
//
//	details, err := coff.Read("main.obj")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(details.StringTableOffset())
//	for i, name := range details.SymbolNames() {
//	    fmt.Printf("[%d] %s\n", i, name)
//	}
//
// # File Layout
//
// Only the fields needed to reach the symbol names are read:
//
//	offset 8                      PointerToSymbolTable (uint32 LE)
//	offset 12                     NumberOfSymbols (uint32 LE)
//	PointerToSymbolTable + i*18   symbol table entry i
//	PointerToSymbolTable + N*18   string table, prefixed by its uint32 LE size
//
// No other part of the file is validated.
//
// # Thread Safety
//
// Read and Parse keep no shared state. The returned Details is immutable and
// safe for concurrent use. A Source must not be used by another goroutine
// while Parse runs on it.
package coffview

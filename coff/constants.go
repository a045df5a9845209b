package coff

// COFF file header fields, as laid out in the PE/COFF specification
// ("COFF File Header (Object and Image)").
const (
	// HeaderPointerToSymbolTableOffset is the file offset of the
	// PointerToSymbolTable field, a uint32 LE.
	HeaderPointerToSymbolTableOffset = 8
	// HeaderNumberOfSymbolsOffset is the file offset of the NumberOfSymbols
	// field, a uint32 LE that directly follows PointerToSymbolTable.
	HeaderNumberOfSymbolsOffset = 12
)

// Symbol table layout ("COFF Symbol Table").
const (
	// SymbolSize is the fixed size of one symbol table record, auxiliary
	// records included.
	SymbolSize = 18
	// ShortNameSize is the width of the inline Name field at the start of
	// each record.
	ShortNameSize = 8
	// zeroesFieldSize is the width of the leading Name.Zeroes field that
	// tells short names from string table references.
	zeroesFieldSize = 4
)

// StringTableSizeFieldSize is the width of the size prefix of the string
// table. The prefix counts itself, so an empty string table has size 4.
const StringTableSizeFieldSize = 4

// maxPreallocSymbols caps the name slice capacity reserved up front when the
// source size is unknown.
const maxPreallocSymbols = 1 << 16

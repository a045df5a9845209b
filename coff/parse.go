package coff

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/wippyai/coffview"
	"github.com/wippyai/coffview/coff/internal/binary"
	"github.com/wippyai/coffview/errors"
	"go.uber.org/zap"
)

// Read opens the file at path read-only, parses its symbol table and closes
// it again on every path. Each call re-opens the file.
func Read(path string) (*Details, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Open(path, err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseBytes parses a COFF file held in memory.
func ParseBytes(data []byte) (*Details, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads the symbol table of the COFF file in src. The caller keeps
// ownership of src. On error no partial result is returned.
func Parse(src coffview.Source) (*Details, error) {
	p := &parser{
		r:   binary.NewReader(src),
		src: src,
		log: Logger(),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	if err := p.parseStringTableSize(); err != nil {
		return nil, err
	}
	names, err := p.parseSymbolNames()
	if err != nil {
		return nil, err
	}

	return &Details{
		symbolTableOffset: p.symbolTableOffset,
		numberOfSymbols:   p.numberOfSymbols,
		stringTableSize:   p.stringTableSize,
		names:             names,
	}, nil
}

type parser struct {
	r   *binary.Reader
	src coffview.Source
	log *zap.Logger

	symbolTableOffset uint32
	numberOfSymbols   uint32
	stringTableSize   uint32
}

func (p *parser) stringTableOffset() int64 {
	return stringTableOffset(p.symbolTableOffset, p.numberOfSymbols)
}

func (p *parser) parseHeader() error {
	var err error
	if err = p.r.Seek(HeaderPointerToSymbolTableOffset); err != nil {
		return errors.Wrap(errors.PhaseHeader, HeaderPointerToSymbolTableOffset, "seek to file header", err)
	}
	if p.symbolTableOffset, err = p.r.ReadU32LE(); err != nil {
		return errors.Wrap(errors.PhaseHeader, HeaderPointerToSymbolTableOffset, "PointerToSymbolTable", err)
	}
	if p.numberOfSymbols, err = p.r.ReadU32LE(); err != nil {
		return errors.Wrap(errors.PhaseHeader, HeaderNumberOfSymbolsOffset, "NumberOfSymbols", err)
	}

	p.log.Debug("parsed file header",
		zap.Uint32("symbol_table_offset", p.symbolTableOffset),
		zap.Uint32("number_of_symbols", p.numberOfSymbols))
	return nil
}

func (p *parser) parseStringTableSize() error {
	off := p.stringTableOffset()
	if err := p.r.Seek(off); err != nil {
		return errors.Wrap(errors.PhaseStringTable, off, "seek to string table", err)
	}
	size, err := p.r.ReadU32LE()
	if err != nil {
		return errors.Wrap(errors.PhaseStringTable, off, "string table size", err)
	}
	p.stringTableSize = size

	p.log.Debug("parsed string table size",
		zap.Int64("string_table_offset", off),
		zap.Uint32("string_table_size", size))
	return nil
}

func (p *parser) parseSymbolNames() ([]string, error) {
	names := make([]string, 0, p.preallocSymbols())
	for i := uint32(0); i < p.numberOfSymbols; i++ {
		name, err := p.readSymbolName(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	p.log.Debug("resolved symbol names", zap.Int("count", len(names)))
	return names, nil
}

// readSymbolName resolves the name of entry i. A zero Name.Zeroes field
// means the next 4 bytes are an offset into the string table; otherwise the
// name is stored inline in the 8-byte Name field.
func (p *parser) readSymbolName(i uint32) (string, error) {
	off := entryOffset(p.symbolTableOffset, i)
	if err := p.r.Seek(off); err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "seek to symbol entry", err)
	}
	zeroes, err := p.r.ReadU32LE()
	if err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "symbol entry zeroes field", err)
	}

	if zeroes == 0 {
		strOff, err := p.r.ReadU32LE()
		if err != nil {
			return "", errors.Wrap(errors.PhaseSymbol, off+zeroesFieldSize, "string table offset field", err)
		}
		return p.readLongName(strOff)
	}
	return p.readShortName(off)
}

func (p *parser) readShortName(off int64) (string, error) {
	if err := p.r.Seek(off); err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "seek to short name", err)
	}
	b, err := p.r.ReadPaddedString(ShortNameSize)
	if err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "short name", err)
	}
	return decodeASCII(b), nil
}

func (p *parser) readLongName(strOff uint32) (string, error) {
	off := p.stringTableOffset() + int64(strOff)
	if err := p.r.Seek(off); err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "seek to string table entry", err)
	}
	b, err := p.r.ReadCString()
	if err != nil {
		return "", errors.Wrap(errors.PhaseSymbol, off, "string table entry", err)
	}
	return decodeASCII(b), nil
}

// preallocSymbols bounds the up-front capacity so that a bogus entry count
// cannot force a huge allocation before the first read fails.
func (p *parser) preallocSymbols() int {
	limit := int64(maxPreallocSymbols)
	if s, ok := p.src.(coffview.SourceSizer); ok {
		limit = s.Size() / SymbolSize
	}
	if int64(p.numberOfSymbols) < limit {
		return int(p.numberOfSymbols)
	}
	return int(limit)
}

// decodeASCII decodes 7-bit ASCII. Bytes with the high bit set become
// U+FFFD.
func decodeASCII(b []byte) string {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			out := make([]rune, 0, len(b))
			for _, c := range b[:i] {
				out = append(out, rune(c))
			}
			for _, c := range b[i:] {
				if c >= utf8.RuneSelf {
					out = append(out, utf8.RuneError)
				} else {
					out = append(out, rune(c))
				}
			}
			return string(out)
		}
	}
	return string(b)
}

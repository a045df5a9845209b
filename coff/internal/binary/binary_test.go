package binary

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != int64(i) {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
	if r.Position() != 3 {
		t.Errorf("final position: got %d, want 3", r.Position())
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(bytes.NewReader(data))

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}
	if r.Position() != 3 {
		t.Errorf("position: got %d, want 3", r.Position())
	}

	_, err = r.ReadBytes(10)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for partial read, got %v", err)
	}

	_, err = r.ReadBytes(1)
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF at end, got %v", err)
	}
}

func TestReaderReadU32LE(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x01, 0x00, 0x00, 0x00}, 1},
		{[]byte{0x64, 0x00, 0x00, 0x00}, 100},
		{[]byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{[]byte{0xff, 0xff, 0xff, 0xff}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadU32LE()
		if err != nil {
			t.Errorf("ReadU32LE(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU32LE(%v): got %#x, want %#x", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadU32LETruncated(t *testing.T) {
	for n := 0; n < 4; n++ {
		r := NewReader(bytes.NewReader(make([]byte, n)))
		if _, err := r.ReadU32LE(); err == nil {
			t.Errorf("ReadU32LE with %d bytes: expected error", n)
		}
	}
}

func TestReaderSeek(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r := NewReader(bytes.NewReader(data))

	// forward, backward, within buffer, then past the end
	for _, off := range []int64{8, 2, 3, 9, 0} {
		if err := r.Seek(off); err != nil {
			t.Fatalf("Seek(%d): %v", off, err)
		}
		if r.Position() != off {
			t.Errorf("Seek(%d): position %d", off, r.Position())
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte after Seek(%d): %v", off, err)
		}
		if b != data[off] {
			t.Errorf("ReadByte after Seek(%d): got %d", off, b)
		}
	}

	if err := r.Seek(100); err != nil {
		t.Fatalf("Seek past end: %v", err)
	}
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("read past end: expected EOF, got %v", err)
	}

	if err := r.Seek(-1); !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("Seek(-1): expected ErrNegativeOffset, got %v", err)
	}
}

func TestReaderReadPaddedString(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		nextPos int64
	}{
		{"full width", []byte("ABCDEFGHxyz"), "ABCDEFGH", 8},
		{"null padded", []byte("AB\x00\x00\x00\x00\x00\x00"), "AB", 3},
		{"seven then null", []byte("ABCDEFG\x00"), "ABCDEFG", 8},
		{"empty", []byte("\x00ABC"), "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			got, err := r.ReadPaddedString(8)
			if err != nil {
				t.Fatalf("ReadPaddedString: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if r.Position() != tt.nextPos {
				t.Errorf("position: got %d, want %d", r.Position(), tt.nextPos)
			}
		})
	}

	r := NewReader(bytes.NewReader([]byte("ABC")))
	if _, err := r.ReadPaddedString(8); !errors.Is(err, io.EOF) {
		t.Errorf("short input: expected EOF, got %v", err)
	}
}

func TestReaderReadCString(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("foo_bar\x00helper\x00")))

	got, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString: %v", err)
	}
	if string(got) != "foo_bar" {
		t.Errorf("got %q, want foo_bar", got)
	}
	if r.Position() != 8 {
		t.Errorf("position: got %d, want 8", r.Position())
	}

	got, err = r.ReadCString()
	if err != nil || string(got) != "helper" {
		t.Errorf("second ReadCString: got %q, %v", got, err)
	}

	if _, err := r.ReadCString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("at end: expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderReadCStringLong(t *testing.T) {
	name := bytes.Repeat([]byte("x"), 3*bufio.NewReader(nil).Size()+17)
	data := append(append([]byte{}, name...), 0, 'z')
	r := NewReader(bytes.NewReader(data))

	got, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString: %v", err)
	}
	if !bytes.Equal(got, name) {
		t.Errorf("got %d bytes, want %d", len(got), len(name))
	}
	if r.Position() != int64(len(name)+1) {
		t.Errorf("position: got %d, want %d", r.Position(), len(name)+1)
	}

	r = NewReader(bytes.NewReader(name))
	if _, err := r.ReadCString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("unterminated: expected ErrUnexpectedEOF, got %v", err)
	}
}

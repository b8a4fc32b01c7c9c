// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"bytes"
	"os"
	"testing"
	"time"
)

func TestAddAndWrite(t *testing.T) {
	builder, err := NewBuilder(Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer builder.Close()

	if err := builder.Add("test", bytes.NewReader([]byte("idunvovkjnreovmegihjbrqlkmfrjnb"))); err != nil {
		t.Error(err)
	}
	if err := builder.Add("test2", bytes.NewReader([]byte("idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"))); err != nil {
		t.Error(err)
	}

	if len(builder.files) != 2 {
		t.Error("incorrect number of files present")
	}

	buf := bytes.NewBuffer([]byte{})
	num, err := builder.WriteTo(buf)
	if err != nil {
		t.Error(err)
	}
	if num != int64(buf.Len()) {
		t.Errorf("reported %d bytes, wrote %d", num, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte(Magic)) {
		t.Error("archive does not start with magic")
	}
	if builder.Len() != 0 {
		t.Error("builder not emptied after WriteTo")
	}
}

func TestHeaderOffsets(t *testing.T) {
	builder, err := NewBuilder(Header{Author: "devblok"})
	if err != nil {
		t.Fatal(err)
	}
	defer builder.Close()

	builder.Add("a", bytes.NewReader(bytes.Repeat([]byte("a"), 100)))
	builder.Add("b", bytes.NewReader(bytes.Repeat([]byte("b"), 300)))

	buf := bytes.NewBuffer([]byte{})
	if _, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	}

	size, err := binaryToint64(buf.Bytes()[MagicLength:])
	if err != nil {
		t.Fatal(err)
	}
	var header Header
	if err := gobDecode(&header, bytes.NewReader(buf.Bytes()[MagicLength+HeaderSizeNumberLength:])); err != nil {
		t.Fatal(err)
	}

	if len(header.Index) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(header.Index))
	}
	first, second := header.Index[0], header.Index[1]
	if first.Offset != 0 || second.Offset != first.CompressedSize {
		t.Errorf("offsets not contiguous: %+v %+v", first, second)
	}
	end := MagicLength + HeaderSizeNumberLength + size + second.Offset + second.CompressedSize
	if end != int64(buf.Len()) {
		t.Errorf("index ends at %d, archive is %d bytes", end, buf.Len())
	}
	if first.Size != 100 || second.Size != 300 {
		t.Errorf("wrong uncompressed sizes: %d %d", first.Size, second.Size)
	}
}

func TestClose(t *testing.T) {
	builder, err := NewBuilder(Header{})
	if err != nil {
		t.Fatal(err)
	}
	if err := builder.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(builder.tempDir); !os.IsNotExist(err) {
		t.Error("temporary dir left behind")
	}
}

func BenchmarkAdd(b *testing.B) {
	builder, err := NewBuilder(Header{})
	if err != nil {
		b.Fatal(err)
	}
	defer builder.Close()

	data := bytes.Repeat([]byte("glsketch"), 4096)
	for idx := 0; idx < b.N; idx++ {
		builder.Add("bench", bytes.NewReader(data))
	}
}

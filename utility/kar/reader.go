// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"sort"

	"github.com/pierrec/lz4"
	"golang.org/x/exp/mmap"
)

// Open opens the kar archived from r. It will also check
// if the file is actually a kar archive, will return an error
// when file incorrect.
func Open(r io.ReaderAt) (*Archive, error) {
	magic := make([]byte, MagicLength)
	if num, err := r.ReadAt(magic, 0); num < MagicLength || string(magic) != Magic {
		if err != nil && err != io.EOF {
			return nil, err
		}
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, _ := r.ReadAt(headerSizeBytes, MagicLength); num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToint64(headerSizeBytes)
	limit := int64(math.MaxInt64) - MagicLength - HeaderSizeNumberLength
	if size, ok := sourceSize(r); ok {
		limit = size - MagicLength - HeaderSizeNumberLength
	}
	if err != nil || headerSize <= 0 || headerSize > limit {
		return nil, ErrFileFormat
	}

	// streamed, a bogus length allocates nothing
	var header Header
	headerReader := io.NewSectionReader(r, MagicLength+HeaderSizeNumberLength, headerSize)
	if err := gobDecode(&header, headerReader); err != nil {
		return nil, fmt.Errorf("gob.Decode(): %s: %w", err, ErrFileFormat)
	}

	ar := &Archive{
		reader: r,
		header: header,
		base:   MagicLength + HeaderSizeNumberLength + headerSize,
		index:  make(map[string]IndexEntry, len(header.Index)),
	}
	for _, e := range header.Index {
		ar.index[e.Name] = e
	}
	return ar, nil
}

// sourceSize reports the length of r when it can tell without reading.
func sourceSize(r io.ReaderAt) (int64, bool) {
	switch v := r.(type) {
	case interface{ Size() int64 }:
		return v.Size(), true
	case interface{ Len() int }:
		return int64(v.Len()), true
	case interface{ Stat() (os.FileInfo, error) }:
		if info, err := v.Stat(); err == nil {
			return info.Size(), true
		}
	}
	return 0, false
}

// OpenFile memory maps the archive at path. The archive
// must be closed to unmap it.
func OpenFile(path string) (*Archive, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	ar, err := Open(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	ar.closer = r
	return ar, nil
}

// Archive provides concurrent io for a kar file, and can provide
// an io.Reader for each file separately to perform actions on.
// It satisfies packd.Finder, packd.Lister and packd.Haser.
type Archive struct {
	reader io.ReaderAt
	closer io.Closer
	header Header
	base   int64
	index  map[string]IndexEntry
}

// Header returns the archive header, including the index.
func (a *Archive) Header() Header {
	return a.header
}

// Has reports whether the archive holds a file with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// List returns the names of all files, sorted.
func (a *Archive) List() []string {
	names := make([]string, 0, len(a.index))
	for name := range a.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	f, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("lz4.Read(%s): %s: %w", name, err, ErrFileFormat)
	}
	if int64(len(data)) != f.entry.Size {
		return nil, fmt.Errorf("%s: read %d of %d bytes: %w", name, len(data), f.entry.Size, ErrFileFormat)
	}
	return data, nil
}

// Find is ReadAll under the name packd expects.
func (a *Archive) Find(name string) ([]byte, error) {
	return a.ReadAll(name)
}

// FindString returns a file as a string.
func (a *Archive) FindString(name string) (string, error) {
	b, err := a.ReadAll(name)
	return string(b), err
}

// Open returns a Reader for a file in the Archive
func (a *Archive) Open(name string) (*Reader, error) {
	entry, ok := a.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	section := io.NewSectionReader(a.reader, a.base+entry.Offset, entry.CompressedSize)
	return &Reader{
		entry:  entry,
		reader: lz4.NewReader(section),
	}, nil
}

// Close releases the memory mapping of archives opened with OpenFile.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry  IndexEntry
	reader io.Reader
}

// Name returns the name of the file being read
func (r *Reader) Name() string {
	return r.entry.Name
}

// Size returns the uncompressed size of the file
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}

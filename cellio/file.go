/*
 * file.go, part of cellulose.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package cellio writes cellulose crystals to PDB and XYZ files, optionally
// compressed with zstd, reads XYZ files back, and writes one PDB file per
// molecule of a combined structure.
package cellio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/cellulose"
)

// Error is the error type of the package. It implements cellulose.Error.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("cellio: %s", err.message)
	}
	return fmt.Sprintf("cellio: file %s: %s", err.filename, err.message)
}

// Decorate adds dec to the error decoration, and returns it.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file associated to the error.
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func newError(msg, filename, caller string) *Error {
	return &Error{message: msg, filename: filename, deco: []string{caller}, critical: true}
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(cellulose.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// Format is a coordinate file format.
type Format int

const (
	XYZ Format = iota
	PDB
)

// FormatOf returns the format of the file name, from its extension, and
// whether the file is zstd compressed (a further .zst extension).
func FormatOf(name string) (Format, bool, error) {
	lower := strings.ToLower(name)
	compressed := strings.HasSuffix(lower, ".zst")
	lower = strings.TrimSuffix(lower, ".zst")
	switch filepath.Ext(lower) {
	case ".xyz":
		return XYZ, compressed, nil
	case ".pdb":
		return PDB, compressed, nil
	}
	return 0, compressed, newError("unknown format, expected .xyz or .pdb, optionally followed by .zst", name, "FormatOf")
}

// zstdFile closes the encoder before the file under it.
type zstdFile struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdFile) Close() error {
	err := z.Encoder.Close()
	if err2 := z.f.Close(); err == nil {
		err = err2
	}
	return err
}

// zstdql makes a *zstd.Decoder an io.ReadCloser, also closing the file.
type zstdql struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdql) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// Create creates the named file for writing. Names ending in .zst are
// compressed with zstd.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(name), ".zst") {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, newError("can't start the zstd encoder: "+err.Error(), name, "Create")
	}
	return &zstdFile{Encoder: enc, f: f}, nil
}

// Open opens the named file for reading, decompressing names ending in .zst.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(name), ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, newError("can't start the zstd decoder: "+err.Error(), name, "Open")
	}
	return &zstdql{Decoder: dec, f: f}, nil
}

// WriteFile writes the crystal to the named file, in the format given by
// its extension.
func WriteFile(name string, c *cellulose.Crystal) error {
	format, _, err := FormatOf(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	out, err := Create(name)
	if err != nil {
		return err
	}
	switch format {
	case PDB:
		err = WritePDB(out, c)
	default:
		err = WriteXYZ(out, c)
	}
	if err2 := out.Close(); err == nil {
		err = err2
	}
	if err != nil {
		if e, ok := err.(*Error); ok && e.filename == "" {
			e.filename = name
		}
		return errDecorate(err, "WriteFile")
	}
	return nil
}

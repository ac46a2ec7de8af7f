// seehuhn.de/go/text2pdf - convert plain text files to PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package text2pdf

import (
	"errors"
)

// ErrMissingInput is returned if no input file is given.
var ErrMissingInput = errors.New("input file argument missing")

var errSameFile = errors.New("output file is the input file")

// ConfigError indicates an invalid configuration value which could not be
// clamped to a valid range.
type ConfigError struct {
	Field string
	Err   error
}

func (err *ConfigError) Error() string {
	return "invalid " + err.Field + ": " + err.Err.Error()
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// OpenError indicates that the input file could not be opened for reading,
// or that the output file could not be created.
type OpenError struct {
	// Op is either "read" or "write".
	Op   string
	Path string
	Err  error
}

func (err *OpenError) Error() string {
	return "could not open file to " + err.Op + " ---> " + err.Path + ": " + err.Err.Error()
}

func (err *OpenError) Unwrap() error {
	return err.Err
}

// WriteError indicates a failure while writing the output.
// The output is incomplete and must be discarded.
type WriteError struct {
	Err error
}

func (err *WriteError) Error() string {
	return "write failed: " + err.Err.Error()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

// ReadError indicates a failure while reading the input, after the input
// was opened successfully.
type ReadError struct {
	Err error
}

func (err *ReadError) Error() string {
	return "read failed: " + err.Err.Error()
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// SPDX-FileCopyrightText: 2025 GSI Helmholtzzentrum für Schwerionenforschung GmbH
//
// SPDX-License-Identifier: MPL-2.0

// Package testutil holds helpers shared by the package tests.
package testutil

// ErrorWriter is an io.Writer that fails with a fixed error, either right away
// or once a number of writes went through.
type ErrorWriter struct {
	err      error
	okWrites int // writes accepted before failing (0 = fail immediately)
	written  []byte
}

// NewErrorWriter creates an ErrorWriter that rejects every write with err.
func NewErrorWriter(err error) *ErrorWriter {
	return &ErrorWriter{err: err}
}

// NewErrorWriterAfter creates an ErrorWriter that accepts n writes and then
// fails with err.
func NewErrorWriterAfter(n int, err error) *ErrorWriter {
	return &ErrorWriter{
		okWrites: n,
		err:      err,
	}
}

// Write implements io.Writer.
func (e *ErrorWriter) Write(p []byte) (int, error) {
	if e.okWrites <= 0 {
		return 0, e.err
	}

	e.okWrites--
	e.written = append(e.written, p...)

	return len(p), nil
}

// String returns everything accepted before the writer started failing.
func (e *ErrorWriter) String() string {
	return string(e.written)
}

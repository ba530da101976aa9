// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

// File holds a piece of text being parsed.  Expressions are short and usually
// arrive from the command line or a game submission, hence the name is purely
// informative.
type File struct {
	// Name for this source (e.g. "<stdin>" or "secret").
	filename string
	// Contents of this source.
	contents []rune
}

// NewSourceFile constructs a new source file from a given string.  The
// contents are held as runes so that every position reported against this
// file counts characters, not bytes.
func NewSourceFile(filename string, text string) *File {
	return &File{filename, []rune(text)}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the characters covered by a given span of this file.  Spans
// which extend beyond the end of the file are truncated.
func (s *File) Text(span Span) string {
	start := min(span.start, len(s.contents))
	end := min(span.end, len(s.contents))
	//
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of the offending token in the text being parsed.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Position returns the character offset at which this error is reported.
func (p *SyntaxError) Position() int {
	return p.span.start
}

// Text returns the offending token, which is empty when the error concerns
// the end of the input.
func (p *SyntaxError) Text() string {
	return p.srcfile.Text(p.span)
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return p.msg
}

// Package console provides the default stdin/stdout collaborators for the
// interactive calculator.
//
// Input implements domain.InputProvider on top of any io.Reader, and Output
// implements domain.OutputProvider on any io.Writer, formatting amounts with
// golang.org/x/text so they read as $50,000.00.
package console

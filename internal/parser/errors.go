package parser

import "fmt"

// UnsupportedFormatError is returned for filenames whose extension is not .docx or .pdf.
type UnsupportedFormatError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("unsupported file format: %s has no extension (want .docx or .pdf)", e.Filename)
	}
	return fmt.Sprintf("unsupported file format: %s (want .docx or .pdf)", e.Ext)
}

// CorruptDocumentError is returned when the bytes cannot be parsed as the claimed format.
type CorruptDocumentError struct {
	Filename string
	Format   string
	Err      error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt %s document %s: %v", e.Format, e.Filename, e.Err)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}

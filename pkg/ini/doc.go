// Package ini reads and writes the line-oriented configuration files used by
// the Morrowind launcher.
//
// The format is only loosely INI. A file is a sequence of CRLF-terminated
// lines grouped under bracketed headers. Lines before the first header belong
// to the preamble, which is keyed by the empty name. Every line is kept as raw
// bytes so content this package does not understand is written back untouched.
//
// # Documents and Sections
//
// Parse splits a buffer into a Document, an ordered map from header name to
// Section. A header that appears more than once keeps appending to the same
// Section. Trailing blank lines are dropped from every Section after parsing,
// and Serialize always separates non-empty Sections with exactly one blank
// line. A file already in that canonical form round-trips byte for byte.
//
// Readers use Document.Section, which never creates anything. Writers use
// Document.EnsureSection.
//
// # Projections
//
// A Projection exposes the values of numbered keys in one Section (for
// example "GameFile0=Morrowind.esm") as an ordered []string. Values are
// decoded as Windows-1252; an undefined byte is an error, never a
// substitution. Regenerate writes a list back, renumbering keys from zero and
// reattaching any inline ";comment" previously attached to the same value.
//
// # Usage Example
//
//	doc, err := ini.LoadPath("Morrowind.ini")
//	if err != nil {
//		return err
//	}
//	files, err := ini.GameFiles.Extract(doc)
//	if err != nil {
//		return err
//	}
//	files = append(files, "MyMod.esp")
//	if err := ini.GameFiles.Regenerate(doc, files); err != nil {
//		return err
//	}
//	return ini.SavePath("Morrowind.ini", doc)
package ini

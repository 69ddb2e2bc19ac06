package ini

const (
	// HeaderOpen starts a section header line.
	HeaderOpen = "["

	// HeaderClose ends a section header line.
	HeaderClose = "]"

	// Assignment separates a key from its value.
	Assignment = '='

	// CommentMarker starts an inline comment.
	CommentMarker = ';'

	// CRLF terminates every line written by Serialize.
	CRLF = "\r\n"

	// Whitespace is the set of bytes trimmed from lines and values.
	Whitespace = " \t\n\v\f\r"

	// Preamble is the name of the section holding lines before the first header.
	Preamble = ""
)

const (
	// ArchivesSection holds the "Archive N=" entries.
	ArchivesSection = "Archives"

	// GameFilesSection holds the "GameFileN=" entries.
	GameFilesSection = "Game Files"

	// ArchiveKeyPrefix is written before the index of an archive entry.
	// The space before the digits is part of the file format.
	ArchiveKeyPrefix = "Archive "

	// GameFileKeyPrefix is written before the index of a game file entry.
	GameFileKeyPrefix = "GameFile"
)

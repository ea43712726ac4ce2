package command

import "strings"

// ParseResult holds the parsed verb and target of a command line.
type ParseResult struct {
	// Verb is the first word of the input, lowercased.
	Verb string
	// Target is the second word, lowercased, or "" when absent. Later words
	// are ignored.
	Target string
}

// Empty reports whether the line had no words at all.
func (p ParseResult) Empty() bool {
	return p.Verb == ""
}

// Parse splits a command line on whitespace, case-insensitively.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ParseResult{}
	}
	res := ParseResult{Verb: fields[0]}
	if len(fields) > 1 {
		res.Target = fields[1]
	}
	return res
}

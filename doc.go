// Package biomark parses, validates and previews game profile bios written
// in a small inline markup.
//
// A bio is at most three lines and 250 characters, markup included. Color
// markers set the color of the text that follows on the same line, and bold
// and italic markers wrap runs of text:
//
//	[FF0000]🔥 PRO PLAYER
//	[FFFFFF]Rank: [b]Heroic[/b]
//	[00FF00][i]Daily Active[/i]
//
// The pipeline is Lex, then Parse, then Validate. Lex and Parse are total:
// any input yields a Document, and defects are reported only by Validate as
// a Verdict naming the first failing Rule. Styles and colors never carry
// across lines.
//
// Example:
//
//	verdict := biomark.Validate(raw)
//	if !verdict.Valid {
//		log.Fatal(verdict.Message)
//	}
//	err := biomark.Render(biomark.RenderRequest{
//		Writer:   os.Stdout,
//		Document: biomark.ParseString(raw),
//		Width:    80,
//	})
//
// Ready-made templates are available through ListSuggestions and PickRandom.
// All functions are safe for concurrent use.
package biomark

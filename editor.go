//-----------------------------------------------------------------------------
/*

Editor

The extension surface of a prompt. An Editor decides how keys are bound,
how text is inserted, highlighted, hinted and completed, and when Enter
continues a multi-line input instead of submitting it.

Embed BaseEditor to get the default behavior and override only what is
needed:

	type lisp struct {
		prompt.BaseEditor
	}

	func (lisp) IsMultiline(buffer string, cursor int) bool {
		return strings.Count(buffer[:cursor], "(") > strings.Count(buffer[:cursor], ")")
	}

*/
//-----------------------------------------------------------------------------

package prompt

//-----------------------------------------------------------------------------

// Editor customizes a prompt.
type Editor interface {
	// ReadAction decodes input until it produces an editing action.
	ReadAction(d *Decoder) (Action, error)
	// Insert inserts a typed character into the buffer.
	Insert(b *Buffer, r rune)
	// Highlight styles the buffer. The result must have the same displayed
	// width and the same newlines as the input.
	Highlight(buffer string) string
	// HighlightPrompt styles the prompt, multiline is set for continuation lines.
	HighlightPrompt(prompt string, multiline bool) string
	// Hint returns text to show below the buffer, it may span several lines.
	Hint(buffer string) (string, bool)
	// HighlightHint styles a hint.
	HighlightHint(hint string) string
	// Complete returns the completions for the buffer, or nil.
	Complete(buffer string, cursor int) *Completion
	// Indent is called on tab when there is nothing to complete.
	Indent(b *Buffer)
	// IsMultiline reports whether Enter should insert a newline.
	IsMultiline(buffer string, cursor int) bool
	// IsKeyword reports whether a character is part of a word.
	IsKeyword(r rune) bool
}

// IndentUnit is inserted by the default Indent.
const IndentUnit = "    "

// BaseEditor implements Editor with the default behavior.
type BaseEditor struct{}

// ReadAction uses DefaultKeyMap.
func (BaseEditor) ReadAction(d *Decoder) (Action, error) {
	return DefaultKeyMap.NextAction(d)
}

// Insert inserts r at the cursor.
func (BaseEditor) Insert(b *Buffer, r rune) {
	b.Insert(r)
}

// Highlight returns the buffer unchanged.
func (BaseEditor) Highlight(buffer string) string {
	return buffer
}

// HighlightPrompt returns the prompt unchanged.
func (BaseEditor) HighlightPrompt(prompt string, multiline bool) string {
	return prompt
}

// Hint returns no hint.
func (BaseEditor) Hint(buffer string) (string, bool) {
	return "", false
}

// HighlightHint returns the hint unchanged.
func (BaseEditor) HighlightHint(hint string) string {
	return hint
}

// Complete returns no completions.
func (BaseEditor) Complete(buffer string, cursor int) *Completion {
	return nil
}

// Indent inserts IndentUnit at the cursor.
func (BaseEditor) Indent(b *Buffer) {
	b.InsertString(IndentUnit)
}

// IsMultiline returns false, Enter always submits.
func (BaseEditor) IsMultiline(buffer string, cursor int) bool {
	return false
}

// IsKeyword uses the package IsKeyword predicate.
func (BaseEditor) IsKeyword(r rune) bool {
	return IsKeyword(r)
}

//-----------------------------------------------------------------------------

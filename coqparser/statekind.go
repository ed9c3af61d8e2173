package coqparser

// StateKind tags a ParseState frame. The zero value is Bare, which is never
// pushed; it is what an empty stack looks like.
type StateKind int

const (
	Bare StateKind = iota

	InString
	InStringEscape

	// The comment kinds carry the atLineStart flag captured when the
	// comment was opened, so it can be restored once the comment closes.
	CommentOpening
	InComment
	CommentClosing

	// Bullet carries the bullet character of the run.
	Bullet

	DotSeen
	WhitespaceSeen
	WhitespaceDotSeen

	lastStateKind
)

func (k StateKind) GoString() string {
	return stateKindToDescription[k]
}

func (k StateKind) String() string {
	return stateKindToDescription[k]
}

func init() {
	// make sure we panic if a description isn't declared
	for k := Bare; k != lastStateKind; k++ {
		if stateKindToDescription[k] == "" {
			panic("you have not updated stateKindToDescription")
		}
	}
}

var stateKindToDescription = map[StateKind]string{
	Bare: "Bare",

	InString:       "InString",
	InStringEscape: "InStringEscape",

	CommentOpening: "CommentOpening",
	InComment:      "InComment",
	CommentClosing: "CommentClosing",

	Bullet: "Bullet",

	DotSeen:           "DotSeen",
	WhitespaceSeen:    "WhitespaceSeen",
	WhitespaceDotSeen: "WhitespaceDotSeen",
}

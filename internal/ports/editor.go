package ports

// EditorOpener opens materialized projects in an external editor
type EditorOpener interface {
	// Open opens path in an editor. editor, when set, takes precedence over
	// the environment.
	Open(path string, editor string) error
}

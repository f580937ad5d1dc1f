package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the user; they are logged at debug level.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

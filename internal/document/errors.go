package document

import "errors"

var (
	// ErrInvalidStyle reports a style field that cannot be parsed.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidNode reports a node that is structurally wrong, such as a
	// text node with children or a duplicate id.
	ErrInvalidNode = errors.New("invalid node")
	// ErrInvalidViewport reports a negative viewport dimension.
	ErrInvalidViewport = errors.New("invalid viewport")
	// ErrUnknownFormat reports a file extension Load does not recognize.
	ErrUnknownFormat = errors.New("unknown document format")
)

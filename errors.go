package imagedit

import "errors"

var (
	// ErrSnapshotDecode reports that a canvas snapshot could not be decoded
	// back into an image.
	ErrSnapshotDecode = errors.New("snapshot could not be decoded")

	// ErrInvalidDimensions reports a resize target with a non-positive side.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUndoWithoutExecute reports an Undo on a command whose Execute never
	// captured undo data.
	ErrUndoWithoutExecute = errors.New("undo called before execute")

	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownComponent = errors.New("unknown component")
	ErrUnknownMode      = errors.New("unknown drawing mode")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidColor     = errors.New("invalid color")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
)

package reel

import "errors"

var (
	// ErrInvalidInput is returned when nil is added to a clip.
	ErrInvalidInput = errors.New("reel: invalid input")

	// ErrNotClip is returned when children are added to a node that has no frames.
	ErrNotClip = errors.New("reel: node is not a clip")

	// ErrResolutionZero is returned when a stage is sized with a zero dimension.
	ErrResolutionZero = errors.New("reel: invalid stage resolution")

	// ErrUnknownAsset is returned by an AssetResolver for a name it cannot serve.
	ErrUnknownAsset = errors.New("reel: unknown asset")
)

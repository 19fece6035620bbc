package ports

import "github.com/user/gridraster/pkg/rgb"

// ErrInvalidArgument is wrapped by every failure the toolkit reports:
// bad channel values, missing files, codec errors and unknown formats.
// Callers should test for it with errors.Is.
var ErrInvalidArgument = rgb.ErrInvalidArgument

package domain

import "errors"

var (
	ErrInvalidToolchain    = errors.New("invalid toolchain version")
	ErrMalformedFixture    = errors.New("malformed fixture identifier")
	ErrSpawn               = errors.New("could not execute process")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

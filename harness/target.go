package harness

import "os"

// Separator is the path separator as it appears in the tool's output
const Separator = string(os.PathSeparator)

// TargetTriple returns the target triple of the running platform. It panics
// on platforms the fixtures have no expectations for.
func TargetTriple() string {
	triple, err := hostTriple()
	if err != nil {
		panic(err)
	}
	return triple
}

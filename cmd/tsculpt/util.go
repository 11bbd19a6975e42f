package main

import (
	"os"

	"github.com/almostsurely/tsculpt/internal/utils"
)

// readWorldFile reads path, wrapping os errors in the codec's own
// error taxonomy so every command fails the same way regardless of
// whether the problem is a missing file or a malformed one.
func readWorldFile(path string) ([]byte, error) {
	//nolint:gosec // G304: user-supplied path is the point of a file-inspecting CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(utils.KindInvalidArgument, "reading world file", err)
	}
	return data, nil
}

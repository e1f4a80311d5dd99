package git

import "github.com/go-git/go-git/v5/plumbing/filemode"

// blobMode reports whether a tree entry mode refers to blob content that can
// be loaded and diffed. Submodule links and directories carry no blob.
func blobMode(m filemode.FileMode) bool {
	switch m {
	case filemode.Regular, filemode.Executable, filemode.Deprecated, filemode.Symlink:
		return true
	default:
		return false
	}
}

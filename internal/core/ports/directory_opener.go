package ports

// DirectoryOpener opens the directory holding a file in the platform file browser.
type DirectoryOpener interface {
	OpenContainingDirectory(path string) error
}

package testutil

// MockDirectoryOpener is a mock implementation of ports.DirectoryOpener.
type MockDirectoryOpener struct {
	OpenFunc func(path string) error
}

func (m *MockDirectoryOpener) OpenContainingDirectory(path string) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil
}

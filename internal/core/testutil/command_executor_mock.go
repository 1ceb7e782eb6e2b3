package testutil

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(name string, args ...string) (stdout string, stderr string, err error)
}

// Execute calls the mock's ExecuteFunc.
func (m *MockCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return "", "", nil
}

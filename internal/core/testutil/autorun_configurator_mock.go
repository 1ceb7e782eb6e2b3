package testutil

// MockAutoRunConfigurator is a mock implementation of ports.AutoRunConfigurator.
type MockAutoRunConfigurator struct {
	EnsureAutoRunConfiguredFunc func(scriptPath string) (bool, error)
	Calls                       []string
}

func (m *MockAutoRunConfigurator) EnsureAutoRunConfigured(scriptPath string) (bool, error) {
	m.Calls = append(m.Calls, scriptPath)
	if m.EnsureAutoRunConfiguredFunc != nil {
		return m.EnsureAutoRunConfiguredFunc(scriptPath)
	}
	return false, nil
}

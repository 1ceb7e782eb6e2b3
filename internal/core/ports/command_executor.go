package ports

// CommandExecutor defines an interface for running external programs.
type CommandExecutor interface {
	Execute(name string, args ...string) (stdout string, stderr string, err error)
}

package utils

const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes the error that ended a command.
	ApplicationExecutionFailedMessage = "ptree failed"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tyemirov/ptree/internal/cli"
	"github.com/tyemirov/ptree/internal/utils"
)

const failureExitCode = 1

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. Deferred log
// flushing happens before main exits.
func run() int {
	logger, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
		return failureExitCode
	}
	defer func() {
		_ = logger.Sync()
	}()

	if executionError := cli.Execute(logger); executionError != nil {
		logger.Error(utils.ApplicationExecutionFailedMessage, zap.Error(executionError))
		return failureExitCode
	}
	return 0
}

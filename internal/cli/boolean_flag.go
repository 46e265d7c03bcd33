package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	switchFlagType          = "bool"
	switchFlagBareValue     = "true"
	flagPrefix              = "--"
	argumentTerminator      = "--"
	errorSwitchValueFormat  = "--%s expects one of %s, got %q"
	acceptedSwitchSpellings = "true/false, yes/no, on/off, 1/0"
)

// parseSwitch reads the spellings accepted by --copy, --statistics, and --catalog.
func parseSwitch(text string) (value bool, recognized bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

// switchFlag is a pflag.Value reporting the "bool" type, so viper decodes it
// like a native boolean flag while it accepts every parseSwitch spelling.
type switchFlag struct {
	name    string
	enabled bool
}

func (flag *switchFlag) Set(text string) error {
	if strings.TrimSpace(text) == "" {
		flag.enabled = true
		return nil
	}
	value, recognized := parseSwitch(text)
	if !recognized {
		return fmt.Errorf(errorSwitchValueFormat, flag.name, acceptedSwitchSpellings, text)
	}
	flag.enabled = value
	return nil
}

func (flag *switchFlag) String() string {
	if flag == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(flag.enabled)
}

func (flag *switchFlag) Type() string {
	return switchFlagType
}

// addSwitchFlag registers an on/off flag on command. A bare --name turns it on.
// The parsed value is read back through config.LoadApplicationConfiguration.
func addSwitchFlag(command *cobra.Command, name string, defaultValue bool, usage string) {
	command.Flags().Var(&switchFlag{name: name, enabled: defaultValue}, name, usage)
	registered := command.Flags().Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = switchFlagBareValue
}

// joinSwitchValues rewrites "--name value" into "--name=value" when name is a
// switch flag and value is a switch spelling, since pflag otherwise reads the
// value as a positional argument. A spelling that names an existing directory
// stays positional so it is rendered as the path.
func joinSwitchValues(command *cobra.Command, arguments []string, isDirectory func(string) bool) []string {
	switchNames := map[string]bool{}
	collectSwitchNames(command, switchNames)
	if len(switchNames) == 0 {
		return arguments
	}

	joined := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == argumentTerminator {
			return append(joined, arguments[index:]...)
		}
		flagName, isLongFlag := strings.CutPrefix(argument, flagPrefix)
		if isLongFlag && switchNames[flagName] && index+1 < len(arguments) {
			candidate := arguments[index+1]
			if _, recognized := parseSwitch(candidate); recognized && !isDirectory(candidate) {
				joined = append(joined, argument+"="+candidate)
				index++
				continue
			}
		}
		joined = append(joined, argument)
	}
	return joined
}

func collectSwitchNames(command *cobra.Command, switchNames map[string]bool) {
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		if _, isSwitch := flag.Value.(*switchFlag); isSwitch {
			switchNames[flag.Name] = true
		}
	})
	for _, subcommand := range command.Commands() {
		collectSwitchNames(subcommand, switchNames)
	}
}

func existingDirectory(path string) bool {
	info, statError := os.Stat(path)
	return statError == nil && info.IsDir()
}

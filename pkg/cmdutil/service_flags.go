// Package cmdutil pkg/cmdutil/service_flags.go
package cmdutil

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/skycoin/skyserve/pkg/logging"
)

// Associated errors.
var (
	ErrTagCannotBeEmpty           = errors.New("tag cannot be empty")
	ErrTagHasInvalidChars         = errors.New("tag can only contain alphanumeric values and underscore")
	ErrTagHasMisplacedUnderscores = errors.New("tag cannot start or end with an underscore or have two underscores back-to-back")
	ErrInvalidLogString           = errors.New("failed to convert string to log level")
	ErrInvalidSyslogNet           = errors.New("network type is unsupported for syslog")
)

// ServiceFlags represents common flags which are shared across services.
type ServiceFlags struct {
	MetricsAddr string
	Syslog      string
	SyslogNet   string
	LogLevel    string
	LogFile     string
	Tag         string

	// state
	checkDone  bool
	loggerDone bool

	logger *logging.Logger
}

// Init initiates the service flags.
// The following are performed:
//   - Ensure 'defaultTag' is provided and valid.
//   - Set "library" defaults.
//   - Add flags to 'rootCmd'.
func (sf *ServiceFlags) Init(rootCmd *cobra.Command, defaultTag string) {
	if err := ValidTag(defaultTag); err != nil {
		panic(err)
	}

	// "library" defaults
	if sf.SyslogNet == "" {
		sf.SyslogNet = "udp"
	}
	if sf.LogLevel == "" {
		sf.LogLevel = "info"
	}
	sf.Tag = defaultTag

	sf.AddFlags(rootCmd.Flags())
}

// AddFlags registers the service flags on the given flag set.
func (sf *ServiceFlags) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&sf.MetricsAddr, "metrics", "m", sf.MetricsAddr, "address to serve metrics and health API from")
	fs.StringVar(&sf.Syslog, "syslog", sf.Syslog, "address in which to dial to syslog server")
	fs.StringVar(&sf.SyslogNet, "syslog-net", sf.SyslogNet, "network in which to dial to syslog server")
	fs.StringVar(&sf.LogLevel, "syslog-lvl", sf.LogLevel, "minimum log level to report")
	fs.StringVar(&sf.LogFile, "log-file", sf.LogFile, "also write logs to this rotated file")
	fs.StringVar(&sf.Tag, "tag", sf.Tag, "tag used for logging and metrics")
}

// Check checks service flags.
func (sf *ServiceFlags) Check() error {
	if alreadyDone(&sf.checkDone) {
		return nil
	}

	if sf.Syslog != "" {
		switch sf.SyslogNet {
		case "tcp", "udp", "unix":
		default:
			return fmt.Errorf("%w: %s", ErrInvalidSyslogNet, sf.SyslogNet)
		}
	}

	if _, _, err := LevelFromString(sf.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLogString, sf.LogLevel)
	}

	if err := ValidTag(sf.Tag); err != nil {
		return fmt.Errorf("%w: %s", err, sf.Tag)
	}

	return nil
}

// Logger returns the logger as specified by the service flags.
func (sf *ServiceFlags) Logger() *logging.Logger {
	if alreadyDone(&sf.loggerDone) {
		return sf.logger
	}

	log := logging.MustGetLogger(sf.Tag)
	sf.logger = log

	logLvl, sysLvl, err := LevelFromString(sf.LogLevel)
	if err != nil {
		panic(err) // should not happen as we have already checked earlier on
	}
	logging.SetLevel(logLvl)

	if sf.Syslog != "" {
		sf.sysLogHook(log, sysLvl)
	}

	if sf.LogFile != "" {
		hook, err := logging.NewFileHook(sf.LogFile, logLvl)
		if err != nil {
			log.WithError(err).
				WithField("file", sf.LogFile).
				Fatal("Failed to open log file.")
		}
		logging.AddHook(hook)
	}

	return log
}

// ValidTag returns an error if the tag is invalid.
func ValidTag(tag string) error {
	if tag == "" {
		return ErrTagCannotBeEmpty
	}

	// check: valid characters
	for _, c := range tag {
		ranges := []*unicode.RangeTable{unicode.Letter, unicode.Number}
		if unicode.IsOneOf(ranges, c) || c == '_' {
			continue
		}
		return ErrTagHasInvalidChars
	}

	// check: correct positioning of characters
	for i, c := range tag {
		if i == 0 || i == len(tag)-1 {
			if c == '_' {
				return ErrTagHasMisplacedUnderscores
			}
			continue
		}
		if c == '_' && (tag[i-1] == '_' || tag[i+1] == '_') {
			return ErrTagHasMisplacedUnderscores
		}
	}

	return nil
}

func alreadyDone(done *bool) bool {
	if *done {
		return true
	}
	*done = true
	return false
}

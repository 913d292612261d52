// Configuration shared by the library options and the command line.

package types

import "errors"

// Config holds alphabet and container selection for the command line tools.
type Config struct {
	Alphabet         string `json:"alphabet" yaml:"alphabet"`
	Container        string `json:"container" yaml:"container"`
	CheckCoordinates bool   `json:"check_coordinates" yaml:"check_coordinates"`
	LogLevel         string `json:"log_level" yaml:"log_level"`
	LineWidth        int    `json:"line_width" yaml:"line_width"`
}

// Supported alphabet names.
const (
	AlphabetDNA     = "dna"
	AlphabetRNA     = "rna"
	AlphabetProtein = "protein"
)

// Supported container kinds.
const (
	ContainerAligned    = "aligned"
	ContainerCompressed = "compressed"
)

// Config validation errors.
var (
	ErrAlphabetEmpty    = errors.New("alphabet must not be empty")
	ErrContainerUnknown = errors.New("unknown container kind")
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLineWidthInvalid = errors.New("line width must not be negative")
)

// knownAlphabets lists the alphabets that Validate accepts.
var knownAlphabets = map[string]bool{
	AlphabetDNA:     true,
	AlphabetRNA:     true,
	AlphabetProtein: true,
}

// knownContainers lists the container kinds that Validate accepts.
var knownContainers = map[string]bool{
	ContainerAligned:    true,
	ContainerCompressed: true,
}

// knownLogLevels lists the log levels that Validate accepts. Empty means info.
var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Alphabet == "" {
		return ErrAlphabetEmpty
	}
	if !knownAlphabets[c.Alphabet] {
		return ErrAlphabetUnknown
	}
	if !knownContainers[c.Container] {
		return ErrContainerUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.LineWidth < 0 {
		return ErrLineWidthInvalid
	}
	return nil
}

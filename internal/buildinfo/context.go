// Package buildinfo contains build-time metadata injected at link time,
// separate from user configuration.
package buildinfo

// UnknownValue is reported when a metadata field was not set at build time.
const UnknownValue = "unknown"

// Context carries the build-time metadata shown by the version command.
type Context struct {
	version   string // Git version tag from the build
	buildDate string // time the binary was built
}

// NewContext creates a build context from the link-time values.
func NewContext(version, buildDate string) *Context {
	return &Context{version: version, buildDate: buildDate}
}

// Version returns the build version string.
func (c *Context) Version() string {
	if c == nil || c.version == "" {
		return UnknownValue
	}
	return c.version
}

// BuildDate returns the build date string.
func (c *Context) BuildDate() string {
	if c == nil || c.buildDate == "" {
		return UnknownValue
	}
	return c.buildDate
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrOutputNotFound is returned when no compiled test output directory can be located.
	ErrOutputNotFound = zerr.New("test output directory not found")

	// ErrArtifactNotFound is returned when a source spec or chunk id has no compiled artifact.
	ErrArtifactNotFound = zerr.New("compiled artifact not found")

	// ErrStale is returned by check when the caller asked for a failing exit on stale output.
	ErrStale = zerr.New("test output is stale")

	// ErrStalenessCheckFailed is returned when the source tree cannot be traversed.
	ErrStalenessCheckFailed = zerr.New("failed to check test output staleness")

	// ErrFingerprintFailed is returned when the source fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to compute source fingerprint")

	// ErrInvalidStrategy is returned when a staleness strategy is invalid.
	ErrInvalidStrategy = zerr.New("invalid staleness strategy, expected 'mtime', 'hash' or 'always'")

	// ErrInvalidVersionOrder is returned when a version order is invalid.
	ErrInvalidVersionOrder = zerr.New("invalid version order, expected 'lexical' or 'numeric'")

	// ErrInvalidPath is returned when a configured path is absolute or escapes the project root.
	ErrInvalidPath = zerr.New("path must be relative to the project root")

	// ErrInvalidExtension is returned when a watched extension does not start with a dot.
	ErrInvalidExtension = zerr.New("watched extension must start with '.'")

	// ErrInvalidTimeout is returned when the rebuild timeout is not a positive number of seconds.
	ErrInvalidTimeout = zerr.New("rebuild timeout must be a positive number of seconds")

	// ErrEmptyRebuildCommand is returned when no rebuild command is configured.
	ErrEmptyRebuildCommand = zerr.New("rebuild command is empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrStoreCreateFailed is returned when the build record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record store directory")

	// ErrStoreReadFailed is returned when the build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when the build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when the build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when the build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrRebuildStartFailed is returned when the rebuild command cannot be started.
	ErrRebuildStartFailed = zerr.New("failed to start rebuild command")

	// ErrRebuildFailed is recorded when the rebuild command exits non-zero.
	ErrRebuildFailed = zerr.New("rebuild command failed")

	// ErrArtifactReadFailed is returned when a compiled artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read compiled artifact")

	// ErrWatcherStartFailed is returned when the source watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start source watcher")

	// ErrInvalidLogFormat is returned when --log-format is not auto, pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrCleanFailed is returned when state cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove state")

	// ErrNoBuildRecord is returned by status when nothing has been rebuilt yet.
	ErrNoBuildRecord = zerr.New("no build record, run ensure first")

	// ErrInvalidProjectName is returned when a pinned project name is not a single path segment.
	ErrInvalidProjectName = zerr.New("invalid project name")

	// ErrInvalidDebounce is returned when the watch debounce is negative.
	ErrInvalidDebounce = zerr.New("watch debounce must not be negative")
)

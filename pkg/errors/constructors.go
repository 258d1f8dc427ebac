package errors

import "fmt"

// Error codes used across the client.
const (
	CodeConfigNotFound  = "CONFIG_NOT_FOUND"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeConnFailed      = "CONN_FAILED"
	CodeConnLost        = "CONN_LOST"
	CodeInvalidNick     = "INVALID_NICK"
	CodeInvalidChannel  = "INVALID_CHANNEL"
	CodeTranscriptWrite = "TRANSCRIPT_WRITE"
)

// ConfigNotFound reports a missing config file.
func ConfigNotFound(path string) *SkeinError {
	return New(CodeConfigNotFound, CategoryConfig, fmt.Sprintf("config file %s not found", path)).
		WithContext("path", path).
		WithSuggestion("run with -init to create a default config")
}

// ConfigInvalid wraps a config parse or validation failure.
func ConfigInvalid(path string, cause error) *SkeinError {
	return New(CodeConfigInvalid, CategoryConfig, fmt.Sprintf("config file %s is invalid", path)).
		WithContext("path", path).
		WithCause(cause).
		WithSuggestion("fix the reported field, or delete the file and run -init")
}

// ConnFailed wraps a dial failure.
func ConnFailed(url string, cause error) *SkeinError {
	return New(CodeConnFailed, CategoryNetwork, fmt.Sprintf("could not connect to %s", url)).
		WithContext("url", url).
		WithCause(cause).
		WithSuggestion("check the server URL and your network connection")
}

// InvalidNick wraps a nickname validation failure.
func InvalidNick(nick string, cause error) *SkeinError {
	return New(CodeInvalidNick, CategoryValidation, fmt.Sprintf("nickname %q is not allowed", nick)).
		WithContext("nick", nick).
		WithCause(cause).
		WithSuggestion("use 1-24 letters, digits or underscores")
}

// InvalidChannel wraps a channel validation failure.
func InvalidChannel(channel string, cause error) *SkeinError {
	return New(CodeInvalidChannel, CategoryValidation, fmt.Sprintf("channel %q is not allowed", channel)).
		WithContext("channel", channel).
		WithCause(cause)
}

// TranscriptWrite wraps a transcript save failure.
func TranscriptWrite(path string, cause error) *SkeinError {
	return New(CodeTranscriptWrite, CategoryIO, fmt.Sprintf("could not write transcript to %s", path)).
		WithContext("path", path).
		WithCause(cause).
		WithSuggestion("check the path exists and is writable")
}

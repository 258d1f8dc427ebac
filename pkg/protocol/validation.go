package protocol

// ValidationError reports an invalid field value before it reaches the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "protocol: " + e.Field + ": " + e.Message
}

// MaxNickLen is the longest nickname hack.chat servers accept.
const MaxNickLen = 24

// ValidateNick checks a nickname: 1-24 characters from [A-Za-z0-9_].
func ValidateNick(nick string) *ValidationError {
	if nick == "" {
		return &ValidationError{Field: "nick", Message: "nickname is required"}
	}
	if len(nick) > MaxNickLen {
		return &ValidationError{Field: "nick", Message: "nickname exceeds 24 characters"}
	}
	for i := 0; i < len(nick); i++ {
		c := nick[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return &ValidationError{Field: "nick", Message: "nickname may only contain letters, digits and underscore"}
		}
	}
	return nil
}

// ValidateChannel checks a channel name. Servers are permissive here; only
// emptiness and whitespace are rejected client-side.
func ValidateChannel(channel string) *ValidationError {
	if channel == "" {
		return &ValidationError{Field: "channel", Message: "channel is required"}
	}
	for i := 0; i < len(channel); i++ {
		if channel[i] == ' ' || channel[i] == '\n' || channel[i] == '\t' {
			return &ValidationError{Field: "channel", Message: "channel may not contain whitespace"}
		}
	}
	return nil
}

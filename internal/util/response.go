package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

func Message(text string) Envelope {
	return Envelope{"message": text}
}

// With adds a key to an envelope and returns it, for chaining.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}

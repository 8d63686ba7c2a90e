package model

import (
	"errors"
	"fmt"
)

// ErrorKind вид ошибки разрешения раунда
type ErrorKind string

const (
	KindUnsupportedGameType ErrorKind = "unsupported_game_type"
	KindMalformedInput      ErrorKind = "malformed_input"
	KindInvalidState        ErrorKind = "invalid_state"
)

// GameError ошибка с видом. Сравнивается через errors.Is по Kind.
type GameError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

var (
	ErrUnsupportedGameType = &GameError{Kind: KindUnsupportedGameType, Message: "unsupported game type"}
	ErrMalformedInput      = &GameError{Kind: KindMalformedInput, Message: "malformed input"}
	ErrInvalidState        = &GameError{Kind: KindInvalidState, Message: "invalid state"}
)

func (e *GameError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GameError) Unwrap() error { return e.Cause }

func (e *GameError) Is(target error) bool {
	var t *GameError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// UnsupportedGameType неизвестный тип игры
func UnsupportedGameType(gameType string) error {
	return &GameError{Kind: KindUnsupportedGameType, Message: fmt.Sprintf("unknown game type: %s", gameType)}
}

// MalformedInput отсутствующее или некорректное поле payload
func MalformedInput(format string, args ...any) error {
	return &GameError{Kind: KindMalformedInput, Message: fmt.Sprintf(format, args...)}
}

// MalformedInputWrap то же, с исходной ошибкой
func MalformedInputWrap(cause error, format string, args ...any) error {
	return &GameError{Kind: KindMalformedInput, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// InvalidState действие недопустимо в текущем состоянии раунда
func InvalidState(format string, args ...any) error {
	return &GameError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// KindOf вид ошибки, пустая строка для ошибок без вида
func KindOf(err error) ErrorKind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSort   Type = "sort"
	TypeFilter Type = "filter"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

type SortArgs struct {
	Key string
}

type FilterArgs struct {
	Category string
}

// ShowArgs carries the completion visibility: "done" shows completed tasks
// too, "pending" hides them.
type ShowArgs struct {
	Mode string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Sort   *SortArgs
	Filter *FilterArgs
	Show   *ShowArgs
}

var (
	sortKeys   = map[string]bool{"created": true, "due": true, "priority": true}
	categories = map[string]bool{
		"all": true, "uncategorized": true, "work": true, "personal": true,
		"shopping": true, "errands": true, "learning": true, "other": true,
	}
	showModes = map[string]bool{"done": true, "pending": true}
)

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires one of: created, due, priority"}
	}
	key := strings.ToLower(args[0])
	if !sortKeys[key] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort key: %s", key)}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Key: key}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a category or all"}
	}
	cat := strings.ToLower(args[0])
	if !categories[cat] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", cat)}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Category: cat}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires done or pending"}
	}
	mode := strings.ToLower(args[0])
	if !showModes[mode] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown show mode: %s", mode)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Mode: mode}}, nil
}

package config

import (
	"strconv"

	"minigrep/internal/domain"
)

// IgnoreCaseEnv enables case-insensitive search when present in the environment.
const IgnoreCaseEnv = "IGNORE_CASE"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is the resolved input of a single search. It is passed by value.
type Config struct {
	Query           string
	FilePath        string
	CaseInsensitive bool
}

// Resolve builds a Config from positional arguments, the environment and
// base settings. args[0] is the query and args[1] the file path; further
// tokens are ignored. Resolve never touches the filesystem.
func Resolve(args []string, lookupEnv LookupFunc, base *AppConfig) (Config, error) {
	if len(args) < 1 {
		return Config{}, &domain.MissingArgumentError{Field: "query"}
	}
	if len(args) < 2 {
		return Config{}, &domain.MissingArgumentError{Field: "file_path"}
	}
	caseInsensitive := base != nil && base.CaseInsensitive
	if !caseInsensitive && lookupEnv != nil {
		caseInsensitive = envEnabled(lookupEnv, IgnoreCaseEnv)
	}
	return Config{
		Query:           args[0],
		FilePath:        args[1],
		CaseInsensitive: caseInsensitive,
	}, nil
}

// envEnabled treats a set variable as true unless its value parses as false.
func envEnabled(lookupEnv LookupFunc, key string) bool {
	v, ok := lookupEnv(key)
	if !ok {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

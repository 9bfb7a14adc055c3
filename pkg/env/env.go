package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/mastermind/pkg/strings"
)

const defaultDotEnvFile = ".env"

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

// LoadDotEnv fills the environment from dotenv files, variables already set are kept.
// Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{defaultDotEnvFile}
	}

	existing := make([]string, 0, len(files))
	for _, file := range files {
		_, err := os.Stat(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("stat dotenv file %s: %w", file, err)
		}

		existing = append(existing, file)
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load dotenv files: %w", err)
	}

	return nil
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok {
		return result, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, result)
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return result, nil
}

func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	result, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	result, err := ParseOptional[T](key)
	if err != nil || result == nil {
		return defaultValue, err
	}

	return *result, nil
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key string, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s with type list", ErrNotFound, key)
	}

	items := strings.Split(str, delimiter)
	result := make([]T, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		value, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list item: %w", key, err)
		}
		result = append(result, value)
	}

	return result, nil
}

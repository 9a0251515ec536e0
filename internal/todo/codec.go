package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed list.schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/nibzard/todowidget/list.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location, e.g. "[1].id"
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// DecodeError reports a stored blob that is not a valid task list.
type DecodeError struct {
	Errors []error
}

func (e *DecodeError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "malformed task list"
	case 1:
		return fmt.Sprintf("malformed task list: %v", e.Errors[0])
	default:
		return fmt.Sprintf("malformed task list: %v (and %d more)", e.Errors[0], len(e.Errors)-1)
	}
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *DecodeError) Unwrap() []error {
	return e.Errors
}

// Encode serializes the list as a JSON array. An empty list encodes as [].
func Encode(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return data, nil
}

// Decode parses a stored blob. An empty or whitespace-only blob yields an
// empty list. Anything else must validate or a *DecodeError is returned.
func Decode(data []byte) (List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return List{}, nil
	}

	result := Validate(data)
	if !result.Valid {
		return nil, &DecodeError{Errors: result.Errors}
	}

	var wire []wireTask
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &DecodeError{Errors: []error{err}}
	}
	l := make(List, 0, len(wire))
	for i, w := range wire {
		id, err := wireID(w.ID)
		if err != nil {
			return nil, &DecodeError{Errors: []error{&ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  err,
			}}}
		}
		l = append(l, &Task{ID: id, Name: w.Name, Done: w.Done})
	}
	return l, nil
}

// wireTask is a stored task before its id is narrowed to an int. JSON has a
// single number type, so an id written as 1.0 is still the integer 1.
type wireTask struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
	Done bool        `json:"done"`
}

func wireID(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("id %s is not an integer", n)
	}
	return int(f), nil
}

// Validate checks a blob against the embedded schema. Duplicate ids are not
// a schema violation; see List.DuplicateIDs.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]error, 0),
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := dec.Decode(&doc)
	if err == nil {
		if _, tokErr := dec.Token(); tokErr != io.EOF {
			err = fmt.Errorf("unexpected data after the list")
		}
	}
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("invalid JSON: %w", err),
		})
		return result
	}

	s, err := compiledSchema()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}
	if err := s.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load task list schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile task list schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/1/id" into "[1].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}

// Package todo holds the task record, the ordered task list, and the JSON
// form the list is persisted in.
//
// The persisted form is a bare JSON array, one object per task, in display
// order:
//
//	[
//	  {"id": 1, "name": "Buy milk", "done": false},
//	  {"id": 2, "name": "Call mom", "done": true}
//	]
//
// # Ids
//
// A new task gets max(existing ids, 0) + 1, computed from the list as it is
// at the moment of the add. Ids are never cached, so a list reloaded from
// storage that was edited elsewhere still yields an id greater than every id
// currently present.
//
// # Validation
//
// Decode checks a blob in two passes:
//
// 1. JSON Schema validation against the embedded list.schema.json
// (draft 2020-12): array of objects with integer id, string name, boolean
// done.
//
// 2. Minimal checks the schema cannot express: ids must be unique.
//
// Any failure is reported as a *DecodeError so callers can decide whether a
// malformed blob is fatal or should fall back to an empty list.
package todo

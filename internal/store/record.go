package store

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// RecordVersion is the version written with every saved user record.
//
// Version 1 records came from the first release and may lack settings and
// the per-language completedLessons/vocabulary arrays.
const RecordVersion = 2

// ErrInvalidRecord indicates a stored user record failed validation.
type ErrInvalidRecord struct {
	Key string
	Err error
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid user record %q: %v", e.Key, e.Err)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.Err }

const userRecordSchema = `{
  "type": "object",
  "required": ["username", "progress", "streak", "lastLogin", "settings"],
  "properties": {
    "username": {"type": "string", "minLength": 1},
    "email": {"type": "string"},
    "selectedLanguage": {"type": "string"},
    "streak": {"type": "integer", "minimum": 0},
    "lastLogin": {"type": "string", "format": "date-time"},
    "settings": {
      "type": "object",
      "properties": {
        "dailyGoal": {"type": "integer", "minimum": 1, "maximum": 240},
        "notifications": {"type": "boolean"},
        "darkMode": {"type": "boolean"}
      }
    },
    "progress": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["level", "xp", "completedLessons", "vocabulary"],
        "properties": {
          "level": {"type": "integer", "minimum": 1},
          "xp": {"type": "integer", "minimum": 0},
          "completedLessons": {"type": "array", "items": {"type": "string"}},
          "vocabulary": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["word", "translation", "masteryLevel"],
              "properties": {
                "word": {"type": "string"},
                "translation": {"type": "string"},
                "context": {"type": "string"},
                "dateAdded": {"type": "string"},
                "reviewDates": {"type": ["array", "null"], "items": {"type": "string"}},
                "masteryLevel": {"type": "integer", "minimum": 0, "maximum": 5}
              }
            }
          }
        }
      }
    }
  }
}`

const schemaURL = "schema://user-record.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func recordSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(userRecordSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateRecord checks raw record JSON against the user record schema.
func validateRecord(raw []byte) error {
	sch, err := recordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// upgradeRecord brings a stored record up to RecordVersion.
func upgradeRecord(raw []byte, version int) ([]byte, error) {
	if version > RecordVersion {
		return nil, fmt.Errorf("record version %d is newer than supported version %d", version, RecordVersion)
	}

	var err error
	if version < 2 {
		if raw, err = upgradeV1(raw); err != nil {
			return nil, fmt.Errorf("upgrade v1 record: %w", err)
		}
	}
	return raw, nil
}

// upgradeV1 fills in fields that first-release records could omit.
func upgradeV1(raw []byte) ([]byte, error) {
	var err error
	doc := gjson.ParseBytes(raw)

	if !doc.Get("settings").Exists() {
		raw, err = sjson.SetBytes(raw, "settings", map[string]any{
			"dailyGoal":     10,
			"notifications": true,
			"darkMode":      false,
		})
		if err != nil {
			return nil, err
		}
	}
	if !doc.Get("streak").Exists() {
		if raw, err = sjson.SetBytes(raw, "streak", 0); err != nil {
			return nil, err
		}
	}
	if !doc.Get("progress").Exists() {
		if raw, err = sjson.SetBytes(raw, "progress", map[string]any{}); err != nil {
			return nil, err
		}
	}

	var langs []string
	doc.Get("progress").ForEach(func(key, value gjson.Result) bool {
		langs = append(langs, key.String())
		return true
	})
	for _, lang := range langs {
		base := "progress." + escapePathKey(lang)
		for _, arr := range []string{"completedLessons", "vocabulary"} {
			if gjson.GetBytes(raw, base+"."+arr).Exists() {
				continue
			}
			if raw, err = sjson.SetBytes(raw, base+"."+arr, []any{}); err != nil {
				return nil, err
			}
		}
		if !gjson.GetBytes(raw, base+".level").Exists() {
			if raw, err = sjson.SetBytes(raw, base+".level", 1); err != nil {
				return nil, err
			}
		}
	}
	return raw, nil
}

// escapePathKey escapes characters that gjson/sjson treat as path syntax.
func escapePathKey(k string) string {
	var b bytes.Buffer
	for _, r := range k {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

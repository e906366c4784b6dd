// Package jsonschema validates the shape of JSON documents that come from
// outside the process (stored lists and model responses) before they are
// decoded into domain types.
package jsonschema

import (
	"fmt"
	"strings"

	"github.com/fwojciec/skilledhelpers"
	"github.com/xeipuuv/gojsonschema"
)

var (
	workersSchema   = mustSchema(workersSchemaJSON())
	productsSchema  = mustSchema(productsSchemaJSON)
	diagnosisSchema = mustSchema(diagnosisSchemaJSON())
)

// ValidateWorkers checks that data is a stored worker list.
// Returns ECORRUPT describing every violation.
func ValidateWorkers(data []byte) error {
	return validate(workersSchema, data, "worker list")
}

// ValidateProducts checks that data is a stored product list.
// Returns ECORRUPT describing every violation.
func ValidateProducts(data []byte) error {
	return validate(productsSchema, data, "product list")
}

// ValidateDiagnosis checks that data is a diagnosis object.
// Returns ECORRUPT describing every violation.
func ValidateDiagnosis(data []byte) error {
	return validate(diagnosisSchema, data, "diagnosis")
}

func validate(schema *gojsonschema.Schema, data []byte, what string) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "%s is not valid JSON: %v", what, err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "%s has unexpected shape: %s", what, strings.Join(errs, "; "))
}

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("jsonschema: compile schema: %v", err))
	}
	return schema
}

// categoryEnum renders the worker categories as a JSON array.
func categoryEnum() string {
	cats := skilledhelpers.Categories()
	quoted := make([]string, len(cats))
	for i, c := range cats {
		quoted[i] = fmt.Sprintf("%q", string(c))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func workersSchemaJSON() string {
	return `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "category", "rating", "reviews", "phone", "hourlyRate", "imageUrl", "services", "description", "location", "isVerified"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"category": {"type": "string", "enum": ` + categoryEnum() + `},
			"rating": {"type": "number", "minimum": 0, "maximum": 5},
			"reviews": {"type": "integer", "minimum": 0},
			"phone": {"type": "string"},
			"hourlyRate": {"type": "number", "minimum": 0},
			"imageUrl": {"type": "string"},
			"services": {"type": "array", "items": {"type": "string"}},
			"description": {"type": "string"},
			"location": {"type": "string"},
			"isVerified": {"type": "boolean"}
		}
	}
}`
}

const productsSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "price", "image", "category", "rating"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"price": {"type": "number", "minimum": 0},
			"image": {"type": "string"},
			"category": {"type": "string"},
			"rating": {"type": "number", "minimum": 0, "maximum": 5}
		}
	}
}`

func diagnosisSchemaJSON() string {
	return `{
	"type": "object",
	"required": ["category", "safetyTip", "reasoning", "suggestedAction"],
	"properties": {
		"category": {"type": "string", "enum": ` + categoryEnum() + `},
		"safetyTip": {"type": "string", "minLength": 1},
		"reasoning": {"type": "string", "minLength": 1},
		"suggestedAction": {"type": "string", "minLength": 1}
	}
}`
}

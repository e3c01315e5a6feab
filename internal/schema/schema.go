// internal/schema/schema.go
package schema

import (
    "bytes"
    "encoding/json"
    _ "embed"
    "errors"
    "strings"

    jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
    "golang.org/x/text/language"
    "golang.org/x/text/message"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
)

//go:embed campaign_schema.json
var campaignSchemaJSON []byte

// Validator checks candidate campaign documents against the embedded JSON
// Schema. Every write goes through it, and so does every read that re-exposes
// stored bytes, as a guard against hand-edited slots.
type Validator struct {
    schema  *jsonschema.Schema
    printer *message.Printer
}

func New() (*Validator, error) {
    doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(campaignSchemaJSON))
    if err != nil {
        return nil, err
    }

    compiler := jsonschema.NewCompiler()
    if err := compiler.AddResource("campaign_schema.json", doc); err != nil {
        return nil, err
    }
    schema, err := compiler.Compile("campaign_schema.json")
    if err != nil {
        return nil, err
    }

    return &Validator{
        schema:  schema,
        printer: message.NewPrinter(language.English),
    }, nil
}

// Validate parses and validates raw bytes as a campaign record. On schema
// violations it returns a *appErrors.ValidationError listing every failing
// field, not just the first.
func (v *Validator) Validate(raw []byte) (*model.Campaign, error) {
    inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
    if err != nil {
        return nil, &appErrors.ValidationError{
            Fields: []appErrors.FieldError{{Path: "/", Reason: "invalid JSON: " + err.Error()}},
        }
    }

    if err := v.schema.Validate(inst); err != nil {
        var ve *jsonschema.ValidationError
        if errors.As(err, &ve) {
            return nil, &appErrors.ValidationError{Fields: v.flatten(ve)}
        }
        return nil, err
    }

    var c model.Campaign
    if err := json.Unmarshal(raw, &c); err != nil {
        return nil, err
    }
    return &c, nil
}

// flatten walks the validator's cause tree and collects the leaf violations.
func (v *Validator) flatten(ve *jsonschema.ValidationError) []appErrors.FieldError {
    if len(ve.Causes) == 0 {
        return []appErrors.FieldError{{
            Path:   "/" + strings.Join(ve.InstanceLocation, "/"),
            Reason: ve.ErrorKind.LocalizedString(v.printer),
        }}
    }

    fields := []appErrors.FieldError{}
    for _, cause := range ve.Causes {
        fields = append(fields, v.flatten(cause)...)
    }
    return fields
}

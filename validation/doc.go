// Package validation checks tablerw configuration before it is used.
//
// Builders collect configuration problems programmatically while a pipeline
// is being declared and report them all at once when it is compiled:
//
//	v := validation.New()
//	v.Min("skip", n, 0)
//	v.Custom(init != nil, "init_data", "must not be nil")
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
//
// Configuration structs use struct tags checked by the validator library:
//
//	type Start struct {
//	    Row int `validate:"min=1"`
//	    Col int `validate:"min=1"`
//	}
//	err := validation.Validate(start)
package validation

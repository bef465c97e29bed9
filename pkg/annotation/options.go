package annotation

// DocOption contributes one documentation field to a Docs annotation. Fields
// accumulate into the handler record's free-form extras; options later in
// the argument list win when keys collide.
type DocOption func(map[string]any)

// WithTags sets the operation's tag list.
func WithTags(tags ...string) DocOption {
	return WithField("tags", tags)
}

// WithSummary sets the operation summary.
func WithSummary(summary string) DocOption {
	return WithField("summary", summary)
}

// WithDescription sets the operation description.
func WithDescription(description string) DocOption {
	return WithField("description", description)
}

// WithOperationID sets an explicit operationId.
func WithOperationID(id string) DocOption {
	return WithField("operationId", id)
}

// WithDeprecated marks the operation deprecated.
func WithDeprecated(deprecated bool) DocOption {
	return WithField("deprecated", deprecated)
}

// WithConsumes sets the accepted request media types.
func WithConsumes(mediaTypes ...string) DocOption {
	return WithField("consumes", mediaTypes)
}

// WithSecurity sets the operation's security requirements.
func WithSecurity(requirements ...map[string][]string) DocOption {
	return WithField("security", requirements)
}

// WithField sets an arbitrary documentation field. Any key is accepted.
//
// Caveat: the keys "parameters" and "responses" replace the record's
// accumulated parameter list or response map wholesale rather than merging
// into them; "produces" is forced to ["application/json"] by every Docs
// call regardless of what is set here.
func WithField(key string, value any) DocOption {
	return func(fields map[string]any) {
		fields[key] = value
	}
}

type requestOptions struct {
	locations []string
	location  string
	required  bool
}

// RequestOption configures a RequestSchema annotation.
type RequestOption func(*requestOptions)

// WithLocations sets the ordered request parts arguments may be read from.
// It takes precedence over WithLocation.
func WithLocations(locations ...string) RequestOption {
	return func(o *requestOptions) {
		o.locations = locations
	}
}

// WithLocation sets a single request part. Kept for compatibility with
// older call sites; WithLocations wins when both are supplied.
func WithLocation(location string) RequestOption {
	return func(o *requestOptions) {
		o.location = location
	}
}

// WithRequired marks the produced body parameter as required.
func WithRequired(required bool) RequestOption {
	return func(o *requestOptions) {
		o.required = required
	}
}

// resolveLocations applies the documented precedence: explicit list first,
// then the wrapped legacy singular, else nil so the validation middleware
// picks its own defaults.
func (o requestOptions) resolveLocations() []string {
	if len(o.locations) > 0 {
		return append([]string(nil), o.locations...)
	}
	if o.location != "" {
		return []string{o.location}
	}
	return nil
}

type responseOptions struct {
	required    bool
	description string
}

// ResponseOption configures a ResponseSchema annotation.
type ResponseOption func(*responseOptions)

// WithResponseRequired marks the response body schema as required during
// conversion.
func WithResponseRequired(required bool) ResponseOption {
	return func(o *responseOptions) {
		o.required = required
	}
}

// WithResponseDescription sets the human-readable description stored with
// the response, overriding any description the converter produced.
func WithResponseDescription(description string) ResponseOption {
	return func(o *responseOptions) {
		o.description = description
	}
}

package interop

// ReturnedErrorPrefix starts the message of a failure produced from an error returned by a test
// body, to tell it apart from failures reported while the test was running.
const ReturnedErrorPrefix = "Test returned error: "

// Outcome is the pass/fail result of a test body's return value.
type Outcome struct {
	Failed  bool
	Message string
}

// OutcomeOf converts the value returned by a test body. A nil error passes; any other error fails
// with a message containing the error's text.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Outcome{}
	}
	return Outcome{Failed: true, Message: ReturnedErrorPrefix + err.Error()}
}

// Report relays a failed outcome to the registry, attributed to the test's registration. A
// passing outcome reports nothing.
func (o Outcome) Report(r TestRegistration) {
	if o.Failed {
		AddFailureAt(r.File, r.Line, o.Message)
	}
}

package transport

// Header is a single caller-supplied header. Extra headers keep their order
// and are applied before the mandatory authentication headers, so they can
// never shadow them.
type Header struct {
	Name  string
	Value string
}

// Request is one logical exchange with the service, built by the endpoint
// helpers and passed by value through the retry loop. Path is relative to
// /1/indexes/ and must already be percent-encoded; Body and Path are opaque
// to the dispatcher.
type Request struct {
	Method  string
	Path    string
	Body    []byte
	Headers []Header
}

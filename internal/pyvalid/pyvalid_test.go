package pyvalid

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", nil, line)
}

func tokIdent(name string, line int) *Token {
	return NewToken(IDENTIFIER, name, nil, line)
}

func atom(name string) *AtomNode {
	return NewAtomNode(tokIdent(name, 1))
}

func sexp(node Node) string {
	printer := AstPrinter{}
	return printer.Print(node)
}

package errors

import "minic/internal/parser"

// Error codes shown as error[Exxxx]. Scanner errors share E0001; parser
// errors get one code per diagnostic kind in E0100-E0199.

const (
	// E0001: Character or literal the scanner could not tokenize
	ErrorInvalidToken = "E0001"

	// Parser errors, one per diagnostic kind (E0100-E0108)

	// E0100: A declaration does not start with a type
	ErrorExpectedType = "E0100"

	// E0101: A name is missing after a type
	ErrorExpectedIdentifier = "E0101"

	// E0102: Integer literal required
	ErrorExpectedIntLit = "E0102"

	// E0103: Float literal required
	ErrorExpectedFloatLit = "E0103"

	// E0104: String literal required
	ErrorExpectedStringLit = "E0104"

	// E0105: Boolean literal required
	ErrorExpectedBoolLit = "E0105"

	// E0106: A required punctuation token is missing
	ErrorMissingToken = "E0106"

	// E0107: A token that cannot appear here
	ErrorUnexpectedToken = "E0107"

	// E0108: Input ended inside a construct
	ErrorUnexpectedEOF = "E0108"
)

var parserCodes = [...]string{
	parser.ExpectedTypeToken:  ErrorExpectedType,
	parser.ExpectedIdentifier: ErrorExpectedIdentifier,
	parser.ExpectedIntLit:     ErrorExpectedIntLit,
	parser.ExpectedFloatLit:   ErrorExpectedFloatLit,
	parser.ExpectedStringLit:  ErrorExpectedStringLit,
	parser.ExpectedBoolLit:    ErrorExpectedBoolLit,
	parser.FailedToFindToken:  ErrorMissingToken,
	parser.UnexpectedToken:    ErrorUnexpectedToken,
	parser.UnexpectedEOF:      ErrorUnexpectedEOF,
}

// CodeFor returns the error code for a parser diagnostic.
func CodeFor(d parser.Diagnostic) string {
	if d.Source == parser.SourceScanner {
		return ErrorInvalidToken
	}
	if d.Kind >= 0 && int(d.Kind) < len(parserCodes) {
		return parserCodes[d.Kind]
	}
	return ErrorUnexpectedToken
}

// GetErrorDescription returns a one-line description of code, or "" for an
// unknown code.
func GetErrorDescription(code string) string {
	return descriptions[code]
}

var descriptions = map[string]string{
	ErrorInvalidToken:       "Source text could not be split into tokens",
	ErrorExpectedType:       "Declaration must start with a type such as int or char",
	ErrorExpectedIdentifier: "A name was expected",
	ErrorExpectedIntLit:     "An integer literal was expected",
	ErrorExpectedFloatLit:   "A float literal was expected",
	ErrorExpectedStringLit:  "A string literal was expected",
	ErrorExpectedBoolLit:    "A boolean literal was expected",
	ErrorMissingToken:       "A required token is missing",
	ErrorUnexpectedToken:    "Token is not valid at this position",
	ErrorUnexpectedEOF:      "File ended before the construct was complete",
}

package valuerange

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// region textual notation /////////////////////////////////////////////////////////////////////////////////////////////

// rangePattern matches the textual notation of a Range: an optional pair of brackets around two comma-separated value
// tokens.
var rangePattern = regexp.MustCompile(`^ *([[(])? *([^,]*), *([^])]*)([])])? *$`)

// Parse creates a Range from its textual notation. The bound tokens are parsed by the given Domain, an empty token or
// the token "None" leaves the corresponding side unbounded. Bracket characters are optional but have to be given
// either on both sides or not at all; without brackets the BoundType defaults to BoundTypeClosedOpen.
func Parse[V, D any](domain Domain[V, D], text string) (r *Range[V, D], err error) {
	matches := rangePattern.FindStringSubmatch(text)
	if matches == nil {
		return nil, errors.Errorf("%w: %q is not a valid range notation", ErrParseFailed, text)
	}

	lowerBracket, upperBracket := matches[1], matches[4]
	if (lowerBracket == "") != (upperBracket == "") {
		return nil, errors.Errorf("%w: %q needs both brackets or none", ErrParseFailed, text)
	}

	boundType := BoundTypeClosedOpen
	if lowerBracket != "" {
		if boundType, err = BoundTypeFromBrackets(lowerBracket[0], upperBracket[0]); err != nil {
			return nil, err
		}
	}

	lower, err := parseToken(domain, matches[2])
	if err != nil {
		return nil, errors.Errorf("%w: invalid lower bound in %q: %v", ErrParseFailed, text, err)
	}
	upper, err := parseToken(domain, matches[3])
	if err != nil {
		return nil, errors.Errorf("%w: invalid upper bound in %q: %v", ErrParseFailed, text, err)
	}

	return New(domain, lower, upper, boundType), nil
}

// parseToken parses a single bound token, mapping the empty token and "None" to an unbounded side.
func parseToken[V, D any](domain Domain[V, D], token string) (value *V, err error) {
	token = strings.TrimSpace(token)
	if token == "" || token == "None" {
		return nil, nil
	}

	parsedValue, err := domain.ParseValue(token)
	if err != nil {
		return nil, err
	}

	return &parsedValue, nil
}

// String returns the textual notation of the Range.
func (r *Range[V, D]) String() string {
	lowerToken, upperToken := "None", "None"
	if lower, exists := r.Lower(); exists {
		lowerToken = r.domain.FormatValue(lower)
	}
	if upper, exists := r.Upper(); exists {
		upperToken = r.domain.FormatValue(upper)
	}

	return fmt.Sprintf("%c%s, %s%c", r.boundType.LowerBracket(), lowerToken, upperToken, r.boundType.UpperBracket())
}

// MarshalJSON returns the textual notation of the Range as a JSON string.
func (r *Range[V, D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

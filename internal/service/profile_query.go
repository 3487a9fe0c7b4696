package service

import (
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/openfeed/feedctl/internal/domain/identity"
	apperrors "github.com/openfeed/feedctl/internal/errors"
)

// ProfileQuery evaluates a JMESPath expression against a profile document so
// callers can project just the fields they want. Unknown server fields kept
// in User.Extra are queryable too.
type ProfileQuery struct{}

// Validate checks that the expression compiles. Empty expressions are
// accepted and mean "the whole document".
func (ProfileQuery) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return apperrors.Validation("invalid query: " + err.Error())
	}
	return nil
}

// Select evaluates the expression against the user's profile document. An
// empty expression returns the whole document.
func (ProfileQuery) Select(user *identity.User, expr string) (any, error) {
	if user == nil {
		return nil, apperrors.Validation("no profile to query")
	}
	doc, err := user.ProfileDocument()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode profile")
	}
	if strings.TrimSpace(expr) == "" {
		return doc, nil
	}
	result, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, apperrors.Validation("invalid query: " + err.Error())
	}
	return result, nil
}

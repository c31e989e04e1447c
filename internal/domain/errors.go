package domain

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeInvalidParameter = "INVALID_PARAMETER"
	textCodeTransportFailure = "TRANSPORT_FAILURE"
)

var (
	// ErrNotFound is the sentinel every NotFoundError unwraps to.
	ErrNotFound = errors.New("portal: not found")
	// ErrInvalidParameter marks caller supplied values the layer refuses.
	ErrInvalidParameter = errors.New("portal: invalid parameter")
	// ErrTransportFailure marks network or decoding failures of a data source.
	ErrTransportFailure = errors.New("portal: transport failure")
)

// NotFoundError reports a single-entity lookup that matched nothing.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsNotFound reports whether err is (or wraps) a NotFound condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IgnoreNotFound maps a NotFound error to (nil, nil) for callers that branch on nil.
func IgnoreNotFound[T any](value *T, err error) (*T, error) {
	if IsNotFound(err) {
		return nil, nil
	}
	return value, err
}

// InvalidParameter categorizes err as a validation failure.
func InvalidParameter(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrInvalidParameter, err), goerrors.CategoryValidation, "invalid parameter").
		WithTextCode(textCodeInvalidParameter)
}

// IsInvalidParameter reports whether err was produced by InvalidParameter.
func IsInvalidParameter(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidParameter) || goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// TransportFailure categorizes err as a data source failure.
func TransportFailure(err error, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if message == "" {
		message = "data source request failed"
	}
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrTransportFailure, err), goerrors.CategoryExternal, message).
		WithTextCode(textCodeTransportFailure)
}

// IsTransportFailure reports whether err was produced by TransportFailure.
func IsTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTransportFailure) || goerrors.IsCategory(err, goerrors.CategoryExternal)
}

// Error kinds shared by every outer surface.
const (
	KindNotFound         = "not_found"
	KindInvalidParameter = "invalid_parameter"
	KindTransportFailure = "transport_failure"
	KindInternal         = "internal"
)

// ErrorKind names the class of err, or "" for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return KindNotFound
	case IsInvalidParameter(err):
		return KindInvalidParameter
	case IsTransportFailure(err):
		return KindTransportFailure
	default:
		return KindInternal
	}
}

var displayMessages = map[Locale]map[string]string{
	LocaleArabic: {
		"not_found": "المحتوى المطلوب غير موجود",
		"invalid":   "معاملات الطلب غير صالحة",
		"failed":    "تعذر تحميل المحتوى",
	},
	LocaleEnglish: {
		"not_found": "The requested content was not found",
		"invalid":   "The request parameters are invalid",
		"failed":    "Failed to load content",
	},
}

// DisplayMessage converts err into a user facing string in locale.
func DisplayMessage(err error, locale Locale) string {
	if err == nil {
		return ""
	}
	messages, ok := displayMessages[locale]
	if !ok {
		messages = displayMessages[DefaultLocale]
	}
	switch {
	case IsNotFound(err):
		return messages["not_found"]
	case IsInvalidParameter(err):
		return messages["invalid"]
	default:
		return messages["failed"]
	}
}

package validator

import (
	"fmt"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/failure"
	"mime"
	"net/http"
	"net/url"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

const maxMultipartMemory = 1 << 20

// FormRequest is a request struct that fills itself from url-encoded form values.
type FormRequest interface {
	FromForm(values url.Values)
}

// ValidateForm parses the form body of r into data and then validates the
// populated struct. Missing keys are left to FromForm to default. A body sent
// without a Content-Type is read as url-encoded, anything that is not a form
// is rejected with 415.
func ValidateForm(r *http.Request, data FormRequest) error {
	if err := parseForm(r); err != nil {
		return err
	}

	data.FromForm(r.PostForm)

	return ValidateStruct(data)
}

func parseForm(r *http.Request) error {
	contentType := r.Header.Get(constant.RequestHeaderContentType)
	if contentType == "" {
		r.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeForm)
		contentType = constant.ContentTypeForm
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return failure.UnsupportedMediaType(fmt.Sprintf("unsupported content type %q", contentType)) //nolint:wrapcheck
	}

	switch mediaType {
	case constant.ContentTypeForm:
		err = r.ParseForm()
	case constant.ContentTypeMultipart:
		err = r.ParseMultipartForm(maxMultipartMemory)
	default:
		return failure.UnsupportedMediaType(fmt.Sprintf("unsupported content type %q", mediaType)) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode form body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// https://github.com/go-playground/validator
func ValidateStruct(data any) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

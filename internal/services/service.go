// Package services exposes one thin CRUD service per backend resource.
// Each service shapes requests for the api.Client and maps failed
// envelopes onto the domain error taxonomy. No caching happens here;
// that is the stores' job.
package services

import (
	"net/http"
	"net/url"

	"backoffice/internal/api"
	"backoffice/internal/domain"
)

// envelopeError converts a failed envelope into a typed domain error.
// Transport failures are reported by the client as status 500 with the
// raw transport message; anything the backend answered keeps its status.
func envelopeError(resource, id string, r api.Response) error {
	if r.Success {
		return nil
	}
	switch r.Status {
	case http.StatusNotFound:
		return domain.NotFoundError{Resource: resource, ID: id}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ValidationError{Msg: r.Error}
	case http.StatusConflict:
		return domain.ConflictError{Resource: resource, Msg: r.Error}
	case http.StatusInternalServerError:
		// The api client folds network errors into a synthetic 500 with
		// no backend message shape, so treat it as transport.
		return domain.TransportError{Op: resource, Err: errFromEnvelope(r)}
	default:
		return domain.InternalError{Msg: r.Error}
	}
}

type envelopeErr struct{ msg string }

func (e envelopeErr) Error() string { return e.msg }

func errFromEnvelope(r api.Response) error {
	if r.Error == "" {
		return nil
	}
	return envelopeErr{msg: r.Error}
}

// withQuery appends non-empty params to the endpoint.
func withQuery(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

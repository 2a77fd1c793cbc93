package handlers

import (
	"errors"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/forms"
)

// userMessage maps an error to the text the operator sees: validation
// warnings and server messages verbatim, everything else the generic
// fallback. Nothing here ever reaches a crash boundary.
func userMessage(err error) string {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var remote *apiclient.RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return apiclient.GenericFailure
}
